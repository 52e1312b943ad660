package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

type CourseFileRepo interface {
  Create(ctx context.Context, tx *gorm.DB, files []*types.CourseFile) ([]*types.CourseFile, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) ([]*types.CourseFile, error)
  GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseFile, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, fileID uuid.UUID, updates map[string]interface{}) error
  SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) error
}

type courseFileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCourseFileRepo(db *gorm.DB, baseLog *logger.Logger) CourseFileRepo {
  repoLog := baseLog.With("repo", "CourseFileRepo")
  return &courseFileRepo{db: db, log: repoLog}
}

func (fr *courseFileRepo) Create(ctx context.Context, tx *gorm.DB, files []*types.CourseFile) ([]*types.CourseFile, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  if len(files) == 0 {
    return []*types.CourseFile{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&files).Error; err != nil {
    return nil, err
  }
  return files, nil
}

func (fr *courseFileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) ([]*types.CourseFile, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  var results []*types.CourseFile
  if len(fileIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("id IN ?", fileIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (fr *courseFileRepo) GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseFile, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  var results []*types.CourseFile
  if len(courseIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("course_id IN ?", courseIDs).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (fr *courseFileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, fileID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.CourseFile{}).
    Where("id = ?", fileID).
    Updates(updates).Error
}

func (fr *courseFileRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }
  if len(fileIDs) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Where("id IN ?", fileIDs).
    Delete(&types.CourseFile{}).Error
}
