package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studygenius/backend/internal/services"
  "github.com/studygenius/backend/internal/types"
)

type CourseHandler struct {
  courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
  return &CourseHandler{courseService: courseService}
}

func parseDate(s string) *time.Time {
  if s == "" {
    return nil
  }
  t, err := time.Parse("2006-01-02", s)
  if err != nil {
    return nil
  }
  return &t
}

func (ch *CourseHandler) Create(c *gin.Context) {
  var req struct {
    Name            string `json:"name"`
    Description     string `json:"description"`
    Subject         string `json:"subject"`
    DifficultyLevel string `json:"difficulty_level"`
    EstimatedHours  int    `json:"estimated_hours"`
    StartDate       string `json:"start_date"`
    EndDate         string `json:"end_date"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  course := types.Course{
    Name:            req.Name,
    Description:     req.Description,
    Subject:         req.Subject,
    DifficultyLevel: req.DifficultyLevel,
    EstimatedHours:  req.EstimatedHours,
    StartDate:       parseDate(req.StartDate),
    EndDate:         parseDate(req.EndDate),
  }
  created, err := ch.courseService.CreateCourse(c.Request.Context(), &course)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "course_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"course": created})
}

func (ch *CourseHandler) List(c *gin.Context) {
  courses, err := ch.courseService.ListCourses(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "course_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"courses": courses})
}

func (ch *CourseHandler) Get(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  course, gErr := ch.courseService.GetCourse(c.Request.Context(), courseID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "course_not_found", gErr)
    return
  }
  RespondOK(c, gin.H{"course": course})
}

func (ch *CourseHandler) Update(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  var req struct {
    Name            *string `json:"name"`
    Description     *string `json:"description"`
    Subject         *string `json:"subject"`
    DifficultyLevel *string `json:"difficulty_level"`
    EstimatedHours  *int    `json:"estimated_hours"`
    StartDate       *string `json:"start_date"`
    EndDate         *string `json:"end_date"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  updates := map[string]interface{}{}
  if req.Name != nil {
    updates["name"] = *req.Name
  }
  if req.Description != nil {
    updates["description"] = *req.Description
  }
  if req.Subject != nil {
    updates["subject"] = *req.Subject
  }
  if req.DifficultyLevel != nil {
    updates["difficulty_level"] = *req.DifficultyLevel
  }
  if req.EstimatedHours != nil {
    updates["estimated_hours"] = *req.EstimatedHours
  }
  if req.StartDate != nil {
    updates["start_date"] = parseDate(*req.StartDate)
  }
  if req.EndDate != nil {
    updates["end_date"] = parseDate(*req.EndDate)
  }
  course, uErr := ch.courseService.UpdateCourse(c.Request.Context(), courseID, updates)
  if uErr != nil {
    RespondError(c, http.StatusBadRequest, "course_update_failed", uErr)
    return
  }
  RespondOK(c, gin.H{"course": course})
}

func (ch *CourseHandler) Delete(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  if dErr := ch.courseService.DeleteCourse(c.Request.Context(), courseID); dErr != nil {
    RespondError(c, http.StatusBadRequest, "course_delete_failed", dErr)
    return
  }
  RespondOK(c, gin.H{"message": "course deleted"})
}
