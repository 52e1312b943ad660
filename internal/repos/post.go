package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

type PostRepo interface {
  Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error)
  GetByCommunityIDs(ctx context.Context, tx *gorm.DB, communityIDs []uuid.UUID) ([]*types.Post, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type postRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
  repoLog := baseLog.With("repo", "PostRepo")
  return &postRepo{db: db, log: repoLog}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  if len(posts) == 0 {
    return []*types.Post{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&posts).Error; err != nil {
    return nil, err
  }
  return posts, nil
}

func (pr *postRepo) GetByCommunityIDs(ctx context.Context, tx *gorm.DB, communityIDs []uuid.UUID) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  var results []*types.Post
  if len(communityIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("community_id IN ?", communityIDs).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *postRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Post{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
