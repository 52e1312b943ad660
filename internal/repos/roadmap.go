package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

type RoadmapRepo interface {
  Create(ctx context.Context, tx *gorm.DB, roadmaps []*types.Roadmap) ([]*types.Roadmap, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Roadmap, error)
  GetByUserAndTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID, topic string) (*types.Roadmap, error)
  SetPayload(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID, payload datatypes.JSON, durationWeeks int) error
}

type roadmapRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
  repoLog := baseLog.With("repo", "RoadmapRepo")
  return &roadmapRepo{db: db, log: repoLog}
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmaps []*types.Roadmap) ([]*types.Roadmap, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if len(roadmaps) == 0 {
    return []*types.Roadmap{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&roadmaps).Error; err != nil {
    return nil, err
  }
  return roadmaps, nil
}

func (rr *roadmapRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Roadmap, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var results []*types.Roadmap
  if len(userIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *roadmapRepo) GetByUserAndTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID, topic string) (*types.Roadmap, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var results []*types.Roadmap
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND topic = ?", userID, topic).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (rr *roadmapRepo) SetPayload(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID, payload datatypes.JSON, durationWeeks int) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Roadmap{}).
    Where("id = ?", roadmapID).
    Updates(map[string]interface{}{
      "payload":        payload,
      "duration_weeks": durationWeeks,
      "updated_at":     time.Now(),
    }).Error
}
