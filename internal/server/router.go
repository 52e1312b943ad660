package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/studygenius/backend/internal/handlers"
  "github.com/studygenius/backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler      *handlers.AuthHandler
  AuthMiddleware   *middleware.AuthMiddleware
  UserHandler      *handlers.UserHandler
  CourseHandler    *handlers.CourseHandler
  FileHandler      *handlers.FileHandler
  PlanHandler      *handlers.PlanHandler
  CommunityHandler *handlers.CommunityHandler
  DashboardHandler *handlers.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.Healthcheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  // Courses
  protected.POST("/courses", cfg.CourseHandler.Create)
  protected.GET("/courses", cfg.CourseHandler.List)
  protected.GET("/courses/:id", cfg.CourseHandler.Get)
  protected.PATCH("/courses/:id", cfg.CourseHandler.Update)
  protected.DELETE("/courses/:id", cfg.CourseHandler.Delete)
  // Course files
  protected.POST("/courses/:id/files", cfg.FileHandler.Upload)
  protected.GET("/courses/:id/files", cfg.FileHandler.List)
  protected.DELETE("/courses/:id/files/:fileID", cfg.FileHandler.Delete)
  // Plans
  protected.POST("/courses/:id/plan", cfg.PlanHandler.GenerateStudyPlan)
  protected.GET("/courses/:id/plan", cfg.PlanHandler.GetStudyPlan)
  protected.POST("/roadmap", cfg.PlanHandler.GenerateRoadmap)
  protected.GET("/roadmaps", cfg.PlanHandler.ListRoadmaps)
  protected.POST("/resources", cfg.PlanHandler.FindResources)
  // Community
  protected.POST("/communities", cfg.CommunityHandler.Create)
  protected.GET("/communities", cfg.CommunityHandler.List)
  protected.POST("/communities/:id/posts", cfg.CommunityHandler.CreatePost)
  protected.GET("/communities/:id/posts", cfg.CommunityHandler.ListPosts)
  protected.POST("/chatbot", cfg.CommunityHandler.AskBot)
  // Dashboard
  protected.GET("/dashboard", cfg.DashboardHandler.Get)
  protected.POST("/dashboard/login", cfg.DashboardHandler.RecordLogin)

  return router
}
