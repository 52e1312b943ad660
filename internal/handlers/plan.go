package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studygenius/backend/internal/services"
)

type PlanHandler struct {
  courseService   services.CourseService
  fileService     services.FileService
  plannerService  services.PlannerService
  resourceService services.ResourceService
  roadmapService  services.RoadmapService
}

func NewPlanHandler(
  courseService services.CourseService,
  fileService services.FileService,
  plannerService services.PlannerService,
  resourceService services.ResourceService,
  roadmapService services.RoadmapService,
) *PlanHandler {
  return &PlanHandler{
    courseService:   courseService,
    fileService:     fileService,
    plannerService:  plannerService,
    resourceService: resourceService,
    roadmapService:  roadmapService,
  }
}

// GenerateStudyPlan runs the generation pipeline for a course and persists the
// result on the course row.
func (ph *PlanHandler) GenerateStudyPlan(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  ctx := c.Request.Context()
  course, gErr := ph.courseService.GetCourse(ctx, courseID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "course_not_found", gErr)
    return
  }
  files, fErr := ph.fileService.ListCourseFiles(ctx, courseID)
  if fErr != nil {
    RespondError(c, http.StatusInternalServerError, "file_list_failed", fErr)
    return
  }
  plan, pErr := ph.plannerService.GenerateStudyPlan(ctx, course, files)
  if pErr != nil {
    RespondError(c, http.StatusBadRequest, "plan_generation_failed", pErr)
    return
  }
  if sErr := ph.courseService.SaveStudyPlan(ctx, courseID, plan); sErr != nil {
    RespondError(c, http.StatusInternalServerError, "plan_save_failed", sErr)
    return
  }
  RespondOK(c, gin.H{"plan": plan})
}

func (ph *PlanHandler) GetStudyPlan(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  plan, gErr := ph.courseService.GetStudyPlan(c.Request.Context(), courseID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "plan_not_found", gErr)
    return
  }
  RespondOK(c, gin.H{"plan": plan})
}

// GenerateRoadmap builds a roadmap from a free-text topic and augments it with
// searched resources keyed off the roadmap's main topics.
func (ph *PlanHandler) GenerateRoadmap(c *gin.Context) {
  var req struct {
    Topic    string `json:"topic"`
    Duration int    `json:"duration"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  ctx := c.Request.Context()
  roadmap, err := ph.plannerService.GenerateRoadmap(ctx, req.Topic, req.Duration)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "roadmap_generation_failed", err)
    return
  }
  extra := ph.resourceService.FindResources(ctx, req.Topic, roadmap.MainTopics)
  seen := map[string]bool{}
  for _, r := range roadmap.Resources {
    seen[r.URL] = true
  }
  for _, r := range extra {
    if r.URL != "" && seen[r.URL] {
      continue
    }
    seen[r.URL] = true
    roadmap.Resources = append(roadmap.Resources, r)
  }
  if _, sErr := ph.roadmapService.SaveRoadmap(ctx, req.Topic, req.Duration, roadmap); sErr != nil {
    RespondError(c, http.StatusInternalServerError, "roadmap_save_failed", sErr)
    return
  }
  RespondOK(c, gin.H{"success": true, "roadmap": roadmap})
}

func (ph *PlanHandler) ListRoadmaps(c *gin.Context) {
  roadmaps, err := ph.roadmapService.ListRoadmaps(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "roadmap_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"roadmaps": roadmaps})
}

func (ph *PlanHandler) FindResources(c *gin.Context) {
  var req struct {
    Topic     string   `json:"topic"`
    Subtopics []string `json:"subtopics"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if req.Topic == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
    return
  }
  resources := ph.resourceService.FindResources(c.Request.Context(), req.Topic, req.Subtopics)
  RespondOK(c, gin.H{"success": true, "resources": resources})
}
