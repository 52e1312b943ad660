package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studygenius/backend/internal/requestdata"
  "github.com/studygenius/backend/internal/services"
  "github.com/studygenius/backend/internal/types"
)

type CommunityHandler struct {
  communityService services.CommunityService
}

func NewCommunityHandler(communityService services.CommunityService) *CommunityHandler {
  return &CommunityHandler{communityService: communityService}
}

func (ch *CommunityHandler) Create(c *gin.Context) {
  var req struct {
    Name        string `json:"name"`
    Description string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  community := types.Community{
    Name:        req.Name,
    Description: req.Description,
  }
  created, err := ch.communityService.CreateCommunity(c.Request.Context(), &community)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "community_create_failed", err)
    return
  }
  RespondOK(c, gin.H{"community": created})
}

func (ch *CommunityHandler) List(c *gin.Context) {
  communities, err := ch.communityService.ListCommunities(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "community_list_failed", err)
    return
  }
  RespondOK(c, gin.H{"communities": communities})
}

func (ch *CommunityHandler) CreatePost(c *gin.Context) {
  communityID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid community id"})
    return
  }
  var req struct {
    Title   string `json:"title"`
    Content string `json:"content"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  post := types.Post{
    CommunityID: communityID,
    UserID:      rd.UserID,
    Title:       req.Title,
    Content:     req.Content,
  }
  created, pErr := ch.communityService.CreatePost(c.Request.Context(), &post)
  if pErr != nil {
    RespondError(c, http.StatusBadRequest, "post_create_failed", pErr)
    return
  }
  RespondOK(c, gin.H{"post": created})
}

func (ch *CommunityHandler) ListPosts(c *gin.Context) {
  communityID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid community id"})
    return
  }
  posts, lErr := ch.communityService.ListPosts(c.Request.Context(), communityID)
  if lErr != nil {
    RespondError(c, http.StatusInternalServerError, "post_list_failed", lErr)
    return
  }
  RespondOK(c, gin.H{"posts": posts})
}

func (ch *CommunityHandler) AskBot(c *gin.Context) {
  var req struct {
    Question string `json:"question"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  answer, aErr := ch.communityService.AskStudyGroupBot(c.Request.Context(), req.Question)
  if aErr != nil {
    RespondError(c, http.StatusBadRequest, "chatbot_failed", aErr)
    return
  }
  RespondOK(c, gin.H{"answer": answer})
}
