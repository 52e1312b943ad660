package services

import (
  "context"
  "encoding/json"
  "fmt"
  "sort"
  "strings"
  "time"
  "github.com/google/uuid"
  "github.com/redis/go-redis/v9"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/types"
)

const dashboardCacheTTL = 60 * time.Second

// UpcomingTask is one scheduled activity derived from a saved study plan.
type UpcomingTask struct {
  ID       string    `json:"id"`
  Title    string    `json:"title"`
  Course   string    `json:"course"`
  CourseID uuid.UUID `json:"course_id"`
  DueDate  string    `json:"due_date"`
  RawDate  time.Time `json:"raw_date"`
  Priority string    `json:"priority"`
}

type CourseProgress struct {
  ID       uuid.UUID `json:"id"`
  Name     string    `json:"name"`
  Progress int       `json:"progress"`
}

type RecommendedResource struct {
  ID          string    `json:"id"`
  Title       string    `json:"title"`
  Type        string    `json:"type"`
  Duration    string    `json:"duration"`
  Course      string    `json:"course"`
  CourseID    uuid.UUID `json:"course_id"`
  URL         string    `json:"url"`
  Description string    `json:"description"`
}

type CommunityStats struct {
  Communities  int64 `json:"communities"`
  Posts        int64 `json:"posts"`
  TotalMembers int   `json:"total_members"`
}

type DashboardPayload struct {
  UpcomingTasks        []UpcomingTask        `json:"upcoming_tasks"`
  CourseProgress       []CourseProgress      `json:"course_progress"`
  RecommendedResources []RecommendedResource `json:"recommended_resources"`
  CommunityStats       CommunityStats        `json:"community_stats"`
  Stats                *types.UserStats      `json:"stats,omitempty"`
}

type DashboardService interface {
  GetDashboard(ctx context.Context) (*DashboardPayload, error)
  RecordLogin(ctx context.Context) (*types.UserStats, error)
}

type dashboardService struct {
  db            *gorm.DB
  log           *logger.Logger
  courseRepo    repos.CourseRepo
  communityRepo repos.CommunityRepo
  postRepo      repos.PostRepo
  statsRepo     repos.UserStatsRepo
  cache         *redis.Client
}

func NewDashboardService(
  db *gorm.DB,
  log *logger.Logger,
  courseRepo repos.CourseRepo,
  communityRepo repos.CommunityRepo,
  postRepo repos.PostRepo,
  statsRepo repos.UserStatsRepo,
  cache *redis.Client,
) DashboardService {
  serviceLog := log.With("service", "DashboardService")
  return &dashboardService{
    db:            db,
    log:           serviceLog,
    courseRepo:    courseRepo,
    communityRepo: communityRepo,
    postRepo:      postRepo,
    statsRepo:     statsRepo,
    cache:         cache,
  }
}

func dashboardCacheKey(userID uuid.UUID) string {
  return "dashboard:" + userID.String()
}

func (ds *dashboardService) GetDashboard(ctx context.Context) (*DashboardPayload, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  if ds.cache != nil {
    cached, cErr := ds.cache.Get(ctx, dashboardCacheKey(userID)).Bytes()
    if cErr == nil {
      var payload DashboardPayload
      if json.Unmarshal(cached, &payload) == nil {
        return &payload, nil
      }
    }
  }

  payload, err := ds.buildDashboard(ctx, userID)
  if err != nil {
    return nil, err
  }

  if ds.cache != nil {
    if data, mErr := json.Marshal(payload); mErr == nil {
      if sErr := ds.cache.Set(ctx, dashboardCacheKey(userID), data, dashboardCacheTTL).Err(); sErr != nil {
        ds.log.Warn("Failed to cache dashboard payload", "error", sErr)
      }
    }
  }
  return payload, nil
}

func (ds *dashboardService) buildDashboard(ctx context.Context, userID uuid.UUID) (*DashboardPayload, error) {
  courses, err := ds.courseRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load courses for dashboard: %w", err)
  }

  payload := &DashboardPayload{
    UpcomingTasks:        upcomingTasks(courses, time.Now()),
    CourseProgress:       courseProgress(courses, time.Now()),
    RecommendedResources: recommendedResources(courses),
  }

  communityCount, cErr := ds.communityRepo.Count(ctx, nil)
  if cErr != nil {
    ds.log.Warn("Failed to count communities", "error", cErr)
  }
  postCount, pErr := ds.postRepo.Count(ctx, nil)
  if pErr != nil {
    ds.log.Warn("Failed to count posts", "error", pErr)
  }
  totalMembers := 0
  communities, gErr := ds.communityRepo.GetAll(ctx, nil)
  if gErr == nil {
    for _, c := range communities {
      totalMembers += c.MemberCount
    }
  }
  payload.CommunityStats = CommunityStats{
    Communities:  communityCount,
    Posts:        postCount,
    TotalMembers: totalMembers,
  }

  stats, sErr := ds.statsRepo.GetByUserID(ctx, nil, userID)
  if sErr != nil {
    ds.log.Warn("Failed to load user stats", "error", sErr)
  } else {
    payload.Stats = stats
  }
  return payload, nil
}

// RecordLogin bumps the login counter once per calendar day and maintains the
// consecutive-day streak.
func (ds *dashboardService) RecordLogin(ctx context.Context) (*types.UserStats, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  now := time.Now()

  var result *types.UserStats
  err = ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    stats, gErr := ds.statsRepo.GetByUserID(ctx, tx, userID)
    if gErr != nil {
      return fmt.Errorf("Failed to load user stats: %w", gErr)
    }
    if stats == nil {
      stats = &types.UserStats{ID: uuid.New(), UserID: userID}
    }

    if stats.LastLoginAt == nil || !sameDay(*stats.LastLoginAt, now) {
      stats.LoginCount++
      if stats.LastLoginAt != nil && sameDay(*stats.LastLoginAt, now.AddDate(0, 0, -1)) {
        stats.StreakDays++
      } else {
        stats.StreakDays = 1
      }
      stats.LastLoginAt = &now
      if uErr := ds.statsRepo.Upsert(ctx, tx, stats); uErr != nil {
        return fmt.Errorf("Failed to save user stats: %w", uErr)
      }
    }
    result = stats
    return nil
  })
  if err != nil {
    return nil, err
  }
  return result, nil
}

func sameDay(a, b time.Time) bool {
  ay, am, ad := a.Date()
  by, bm, bd := b.Date()
  return ay == by && am == bm && ad == bd
}

var weekdayIndex = map[string]int{
  "sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
  "thursday": 4, "friday": 5, "saturday": 6,
}

// upcomingTasks expands saved plan schedules into dated tasks, keeping the 10
// closest future ones.
func upcomingTasks(courses []*types.Course, today time.Time) []UpcomingTask {
  tasks := []UpcomingTask{}
  for _, course := range courses {
    plan := decodeSavedPlan(course)
    if plan == nil || len(plan.Schedule.Weeks) == 0 {
      continue
    }

    startDate := course.CreatedAt
    if course.StartDate != nil {
      startDate = *course.StartDate
    } else if course.PlanGeneratedAt != nil {
      startDate = *course.PlanGeneratedAt
    }

    for weekIndex, week := range plan.Schedule.Weeks {
      weekStart := startDate.AddDate(0, 0, weekIndex*7)
      for _, day := range week.Days {
        if len(day.Activities) == 0 {
          continue
        }
        dayIndex, ok := weekdayIndex[strings.ToLower(day.Day)]
        if !ok {
          continue
        }
        diff := (dayIndex - int(weekStart.Weekday()) + 7) % 7
        taskDate := weekStart.AddDate(0, 0, diff)
        if taskDate.Before(today) {
          continue
        }
        diffDays := int(taskDate.Sub(today).Hours() / 24)
        for i, activity := range day.Activities {
          tasks = append(tasks, UpcomingTask{
            ID:       fmt.Sprintf("%s_%d_%s_%d", course.ID, weekIndex, strings.ToLower(day.Day), i),
            Title:    activity,
            Course:   course.Name,
            CourseID: course.ID,
            DueDate:  dueDateLabel(taskDate, diffDays),
            RawDate:  taskDate,
            Priority: taskPriority(diffDays),
          })
        }
      }
    }
  }
  sort.SliceStable(tasks, func(i, j int) bool {
    return tasks[i].RawDate.Before(tasks[j].RawDate)
  })
  if len(tasks) > 10 {
    tasks = tasks[:10]
  }
  return tasks
}

func dueDateLabel(taskDate time.Time, diffDays int) string {
  switch {
  case diffDays == 0:
    return "Today"
  case diffDays == 1:
    return "Tomorrow"
  case diffDays < 7:
    return taskDate.Weekday().String()
  default:
    return taskDate.Format("Jan 2")
  }
}

func taskPriority(diffDays int) string {
  switch {
  case diffDays <= 3:
    return "high"
  case diffDays <= 7:
    return "medium"
  default:
    return "low"
  }
}

// courseProgress estimates completion from elapsed calendar time, clamped to
// [5, 100] for courses that have started.
func courseProgress(courses []*types.Course, today time.Time) []CourseProgress {
  progress := []CourseProgress{}
  for _, course := range courses {
    if course.StartDate == nil || course.EndDate == nil {
      continue
    }
    if course.StartDate.After(today) {
      continue
    }
    total := course.EndDate.Sub(*course.StartDate)
    if total <= 0 {
      continue
    }
    elapsed := today.Sub(*course.StartDate)
    percentage := int(float64(elapsed) / float64(total) * 100)
    if percentage > 100 {
      percentage = 100
    }
    if percentage < 5 {
      percentage = 5
    }
    progress = append(progress, CourseProgress{
      ID:       course.ID,
      Name:     course.Name,
      Progress: percentage,
    })
  }
  sort.SliceStable(progress, func(i, j int) bool {
    return progress[i].Progress > progress[j].Progress
  })
  return progress
}

// recommendedResources surfaces resources from saved plans, labeling each with
// a coarse content type and an estimated duration.
func recommendedResources(courses []*types.Course) []RecommendedResource {
  recommendations := []RecommendedResource{}
  for _, course := range courses {
    plan := decodeSavedPlan(course)
    if plan == nil || len(plan.Resources) == 0 {
      continue
    }
    for _, resource := range plan.Resources {
      rType := recommendationType(resource)
      url := resource.URL
      if url == "" {
        url = "#"
      }
      recommendations = append(recommendations, RecommendedResource{
        ID:          fmt.Sprintf("%s_%d", course.ID, len(recommendations)),
        Title:       resource.Title,
        Type:        rType,
        Duration:    recommendationDuration(rType),
        Course:      course.Name,
        CourseID:    course.ID,
        URL:         url,
        Description: resource.Description,
      })
    }
  }
  return recommendations
}

func recommendationType(resource types.Resource) string {
  url := strings.ToLower(resource.URL)
  desc := strings.ToLower(resource.Description)
  switch {
  case strings.Contains(url, "youtube") || strings.Contains(url, "vimeo") || strings.Contains(desc, "video"):
    return "Video"
  case strings.Contains(url, "quiz") || strings.Contains(url, "test") ||
    strings.Contains(desc, "quiz") || strings.Contains(desc, "test"):
    return "Quiz"
  case strings.Contains(url, "slides") || strings.Contains(url, "presentation") ||
    strings.Contains(desc, "slides") || strings.Contains(desc, "presentation"):
    return "Slides"
  default:
    return "Article"
  }
}

func recommendationDuration(rType string) string {
  switch rType {
  case "Video":
    return "10-15 min"
  case "Quiz":
    return "15 questions"
  case "Slides":
    return "20 slides"
  default:
    return "5-10 min read"
  }
}

func decodeSavedPlan(course *types.Course) *types.StudyPlan {
  if len(course.StudyPlan) == 0 {
    return nil
  }
  var plan types.StudyPlan
  if err := json.Unmarshal(course.StudyPlan, &plan); err != nil {
    return nil
  }
  return &plan
}
