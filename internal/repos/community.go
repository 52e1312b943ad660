package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

type CommunityRepo interface {
  Create(ctx context.Context, tx *gorm.DB, communities []*types.Community) ([]*types.Community, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Community, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, communityIDs []uuid.UUID) ([]*types.Community, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type communityRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCommunityRepo(db *gorm.DB, baseLog *logger.Logger) CommunityRepo {
  repoLog := baseLog.With("repo", "CommunityRepo")
  return &communityRepo{db: db, log: repoLog}
}

func (cr *communityRepo) Create(ctx context.Context, tx *gorm.DB, communities []*types.Community) ([]*types.Community, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if len(communities) == 0 {
    return []*types.Community{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&communities).Error; err != nil {
    return nil, err
  }
  return communities, nil
}

func (cr *communityRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Community, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var results []*types.Community
  if err := transaction.WithContext(ctx).
    Order("member_count DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *communityRepo) GetByIDs(ctx context.Context, tx *gorm.DB, communityIDs []uuid.UUID) ([]*types.Community, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var results []*types.Community
  if len(communityIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("id IN ?", communityIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *communityRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Community{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
