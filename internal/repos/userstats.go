package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

type UserStatsRepo interface {
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserStats, error)
  Upsert(ctx context.Context, tx *gorm.DB, stats *types.UserStats) error
}

type userStatsRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserStatsRepo(db *gorm.DB, baseLog *logger.Logger) UserStatsRepo {
  repoLog := baseLog.With("repo", "UserStatsRepo")
  return &userStatsRepo{db: db, log: repoLog}
}

func (sr *userStatsRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserStats, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var results []*types.UserStats
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (sr *userStatsRepo) Upsert(ctx context.Context, tx *gorm.DB, stats *types.UserStats) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  return transaction.WithContext(ctx).Save(stats).Error
}
