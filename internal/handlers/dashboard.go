package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/studygenius/backend/internal/services"
)

type DashboardHandler struct {
  dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
  return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Get(c *gin.Context) {
  payload, err := dh.dashboardService.GetDashboard(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "dashboard_failed", err)
    return
  }
  RespondOK(c, payload)
}

func (dh *DashboardHandler) RecordLogin(c *gin.Context) {
  stats, err := dh.dashboardService.RecordLogin(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "record_login_failed", err)
    return
  }
  RespondOK(c, gin.H{"stats": stats})
}
