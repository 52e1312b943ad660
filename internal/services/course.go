package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/requestdata"
  "github.com/studygenius/backend/internal/types"
)

type CourseService interface {
  CreateCourse(ctx context.Context, course *types.Course) (*types.Course, error)
  GetCourse(ctx context.Context, courseID uuid.UUID) (*types.Course, error)
  ListCourses(ctx context.Context) ([]*types.Course, error)
  UpdateCourse(ctx context.Context, courseID uuid.UUID, updates map[string]interface{}) (*types.Course, error)
  DeleteCourse(ctx context.Context, courseID uuid.UUID) error
  SaveStudyPlan(ctx context.Context, courseID uuid.UUID, plan *types.StudyPlan) error
  GetStudyPlan(ctx context.Context, courseID uuid.UUID) (*types.StudyPlan, error)
}

type courseService struct {
  db         *gorm.DB
  log        *logger.Logger
  courseRepo repos.CourseRepo
}

func NewCourseService(db *gorm.DB, log *logger.Logger, courseRepo repos.CourseRepo) CourseService {
  serviceLog := log.With("service", "CourseService")
  return &courseService{db: db, log: serviceLog, courseRepo: courseRepo}
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, fmt.Errorf("No request data found in context")
  }
  return rd.UserID, nil
}

func (cs *courseService) CreateCourse(ctx context.Context, course *types.Course) (*types.Course, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if course.Name == "" {
    return nil, fmt.Errorf("Course name is required")
  }
  course.ID = uuid.New()
  course.UserID = userID
  created, cErr := cs.courseRepo.Create(ctx, nil, []*types.Course{course})
  if cErr != nil {
    return nil, fmt.Errorf("Failed to create course: %w", cErr)
  }
  return created[0], nil
}

// getOwned loads a course and verifies it belongs to the caller.
func (cs *courseService) getOwned(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  courses, gErr := cs.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
  if gErr != nil {
    return nil, fmt.Errorf("Failed to load course: %w", gErr)
  }
  if len(courses) == 0 || courses[0].UserID != userID {
    return nil, fmt.Errorf("Course not found")
  }
  return courses[0], nil
}

func (cs *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
  return cs.getOwned(ctx, courseID)
}

func (cs *courseService) ListCourses(ctx context.Context) ([]*types.Course, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  courses, gErr := cs.courseRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if gErr != nil {
    return nil, fmt.Errorf("Failed to list courses: %w", gErr)
  }
  return courses, nil
}

func (cs *courseService) UpdateCourse(ctx context.Context, courseID uuid.UUID, updates map[string]interface{}) (*types.Course, error) {
  if _, err := cs.getOwned(ctx, courseID); err != nil {
    return nil, err
  }
  if len(updates) == 0 {
    return cs.getOwned(ctx, courseID)
  }
  if uErr := cs.courseRepo.UpdateFields(ctx, nil, courseID, updates); uErr != nil {
    return nil, fmt.Errorf("Failed to update course: %w", uErr)
  }
  return cs.getOwned(ctx, courseID)
}

func (cs *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
  if _, err := cs.getOwned(ctx, courseID); err != nil {
    return err
  }
  if dErr := cs.courseRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{courseID}); dErr != nil {
    return fmt.Errorf("Failed to delete course: %w", dErr)
  }
  return nil
}

func (cs *courseService) SaveStudyPlan(ctx context.Context, courseID uuid.UUID, plan *types.StudyPlan) error {
  if _, err := cs.getOwned(ctx, courseID); err != nil {
    return err
  }
  plan.EnsureShape()
  raw, mErr := json.Marshal(plan)
  if mErr != nil {
    return fmt.Errorf("Failed to marshal study plan: %w", mErr)
  }
  if sErr := cs.courseRepo.SetStudyPlan(ctx, nil, courseID, datatypes.JSON(raw), time.Now()); sErr != nil {
    return fmt.Errorf("Failed to save study plan: %w", sErr)
  }
  return nil
}

func (cs *courseService) GetStudyPlan(ctx context.Context, courseID uuid.UUID) (*types.StudyPlan, error) {
  course, err := cs.getOwned(ctx, courseID)
  if err != nil {
    return nil, err
  }
  if len(course.StudyPlan) == 0 {
    return nil, nil
  }
  var plan types.StudyPlan
  if uErr := json.Unmarshal(course.StudyPlan, &plan); uErr != nil {
    return nil, fmt.Errorf("Failed to unmarshal study plan: %w", uErr)
  }
  plan.EnsureShape()
  return &plan, nil
}
