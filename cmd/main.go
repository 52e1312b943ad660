package main

import (
  "fmt"
  "os"
  "time"
  "github.com/joho/godotenv"
  "github.com/redis/go-redis/v9"
  "github.com/studygenius/backend/internal/db"
  "github.com/studygenius/backend/internal/handlers"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/middleware"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/server"
  "github.com/studygenius/backend/internal/services"
  "github.com/studygenius/backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  serverPort := utils.GetEnv("SERVER_PORT", "8080", log)
  redisAddr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Redis
  redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  courseRepo := repos.NewCourseRepo(thePG, log)
  courseFileRepo := repos.NewCourseFileRepo(thePG, log)
  roadmapRepo := repos.NewRoadmapRepo(thePG, log)
  communityRepo := repos.NewCommunityRepo(thePG, log)
  postRepo := repos.NewPostRepo(thePG, log)
  userStatsRepo := repos.NewUserStatsRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  bucketService, err := services.NewBucketService(log)
  if err != nil {
    log.Error("Could not init BucketService", "error", err)
    os.Exit(1)
  }
  aiClient, err := services.NewAIClient(log)
  if err != nil {
    log.Error("Could not init AIClient", "error", err)
    os.Exit(1)
  }
  searchClient := services.NewSearchClient(log)
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo)
  courseService := services.NewCourseService(thePG, log, courseRepo)
  fileService := services.NewFileService(thePG, log, courseService, courseFileRepo, bucketService)
  extractionService := services.NewExtractionService(log, bucketService)
  syllabusClassifier := services.NewSyllabusClassifier(log)
  promptService := services.NewPromptService(log)
  plannerService := services.NewPlannerService(log, extractionService, syllabusClassifier, promptService, aiClient)
  resourceService := services.NewResourceService(log, searchClient, promptService, aiClient)
  roadmapService := services.NewRoadmapService(thePG, log, roadmapRepo)
  communityService := services.NewCommunityService(thePG, log, communityRepo, postRepo, aiClient)
  dashboardService := services.NewDashboardService(thePG, log, courseRepo, communityRepo, postRepo, userStatsRepo, redisClient)

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  courseHandler := handlers.NewCourseHandler(courseService)
  fileHandler := handlers.NewFileHandler(fileService)
  planHandler := handlers.NewPlanHandler(courseService, fileService, plannerService, resourceService, roadmapService)
  communityHandler := handlers.NewCommunityHandler(communityService)
  dashboardHandler := handlers.NewDashboardHandler(dashboardService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up Router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:      authHandler,
    AuthMiddleware:   authMiddleware,
    UserHandler:      userHandler,
    CourseHandler:    courseHandler,
    FileHandler:      fileHandler,
    PlanHandler:      planHandler,
    CommunityHandler: communityHandler,
    DashboardHandler: dashboardHandler,
  })

  log.Info("Starting server...", "port", serverPort)
  if err := router.Run(":" + serverPort); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
