package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/types"
)

type RoadmapService interface {
  SaveRoadmap(ctx context.Context, topic string, durationWeeks int, roadmap *types.LearningRoadmap) (*types.Roadmap, error)
  ListRoadmaps(ctx context.Context) ([]*types.Roadmap, error)
}

type roadmapService struct {
  db          *gorm.DB
  log         *logger.Logger
  roadmapRepo repos.RoadmapRepo
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roadmapRepo repos.RoadmapRepo) RoadmapService {
  serviceLog := log.With("service", "RoadmapService")
  return &roadmapService{db: db, log: serviceLog, roadmapRepo: roadmapRepo}
}

// SaveRoadmap stores the generated payload, replacing any earlier roadmap the
// user generated for the same topic.
func (rs *roadmapService) SaveRoadmap(ctx context.Context, topic string, durationWeeks int, roadmap *types.LearningRoadmap) (*types.Roadmap, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if durationWeeks <= 0 {
    durationWeeks = 4
  }
  roadmap.EnsureShape()
  payload, mErr := json.Marshal(roadmap)
  if mErr != nil {
    return nil, fmt.Errorf("Failed to marshal roadmap: %w", mErr)
  }

  existing, gErr := rs.roadmapRepo.GetByUserAndTopic(ctx, nil, userID, topic)
  if gErr != nil {
    return nil, fmt.Errorf("Failed to check existing roadmap: %w", gErr)
  }
  if existing != nil {
    if sErr := rs.roadmapRepo.SetPayload(ctx, nil, existing.ID, datatypes.JSON(payload), durationWeeks); sErr != nil {
      return nil, fmt.Errorf("Failed to update roadmap: %w", sErr)
    }
    existing.Payload = datatypes.JSON(payload)
    existing.DurationWeeks = durationWeeks
    return existing, nil
  }

  record := &types.Roadmap{
    ID:            uuid.New(),
    UserID:        userID,
    Topic:         topic,
    DurationWeeks: durationWeeks,
    Payload:       datatypes.JSON(payload),
  }
  created, cErr := rs.roadmapRepo.Create(ctx, nil, []*types.Roadmap{record})
  if cErr != nil {
    return nil, fmt.Errorf("Failed to save roadmap: %w", cErr)
  }
  return created[0], nil
}

func (rs *roadmapService) ListRoadmaps(ctx context.Context) ([]*types.Roadmap, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  roadmaps, gErr := rs.roadmapRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if gErr != nil {
    return nil, fmt.Errorf("Failed to list roadmaps: %w", gErr)
  }
  return roadmaps, nil
}
