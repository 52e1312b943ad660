package services

import (
  "context"
  "fmt"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/types"
)

const studyGroupSystemMessage = `You are an AI assistant that helps people find information. You act as a chatbot for a study group on an educational platform where students collaborate. Answer user questions with accurate and concise answers, and suggest resources and study techniques when appropriate. Avoid providing medical, legal, or financial advice, and avoid generating harmful or inappropriate content.`

type CommunityService interface {
  CreateCommunity(ctx context.Context, community *types.Community) (*types.Community, error)
  ListCommunities(ctx context.Context) ([]*types.Community, error)
  CreatePost(ctx context.Context, post *types.Post) (*types.Post, error)
  ListPosts(ctx context.Context, communityID uuid.UUID) ([]*types.Post, error)
  AskStudyGroupBot(ctx context.Context, question string) (string, error)
}

type communityService struct {
  db            *gorm.DB
  log           *logger.Logger
  communityRepo repos.CommunityRepo
  postRepo      repos.PostRepo
  aiClient      AIClient
}

func NewCommunityService(
  db *gorm.DB,
  log *logger.Logger,
  communityRepo repos.CommunityRepo,
  postRepo repos.PostRepo,
  aiClient AIClient,
) CommunityService {
  serviceLog := log.With("service", "CommunityService")
  return &communityService{
    db:            db,
    log:           serviceLog,
    communityRepo: communityRepo,
    postRepo:      postRepo,
    aiClient:      aiClient,
  }
}

func (cs *communityService) CreateCommunity(ctx context.Context, community *types.Community) (*types.Community, error) {
  if strings.TrimSpace(community.Name) == "" {
    return nil, fmt.Errorf("Community name is required")
  }
  community.ID = uuid.New()
  created, err := cs.communityRepo.Create(ctx, nil, []*types.Community{community})
  if err != nil {
    return nil, fmt.Errorf("Failed to create community: %w", err)
  }
  return created[0], nil
}

func (cs *communityService) ListCommunities(ctx context.Context) ([]*types.Community, error) {
  communities, err := cs.communityRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list communities: %w", err)
  }
  return communities, nil
}

func (cs *communityService) CreatePost(ctx context.Context, post *types.Post) (*types.Post, error) {
  if strings.TrimSpace(post.Title) == "" {
    return nil, fmt.Errorf("Post title is required")
  }
  communities, gErr := cs.communityRepo.GetByIDs(ctx, nil, []uuid.UUID{post.CommunityID})
  if gErr != nil {
    return nil, fmt.Errorf("Failed to load community: %w", gErr)
  }
  if len(communities) == 0 {
    return nil, fmt.Errorf("Community not found")
  }
  post.ID = uuid.New()
  created, err := cs.postRepo.Create(ctx, nil, []*types.Post{post})
  if err != nil {
    return nil, fmt.Errorf("Failed to create post: %w", err)
  }
  return created[0], nil
}

func (cs *communityService) ListPosts(ctx context.Context, communityID uuid.UUID) ([]*types.Post, error) {
  posts, err := cs.postRepo.GetByCommunityIDs(ctx, nil, []uuid.UUID{communityID})
  if err != nil {
    return nil, fmt.Errorf("Failed to list posts: %w", err)
  }
  return posts, nil
}

func (cs *communityService) AskStudyGroupBot(ctx context.Context, question string) (string, error) {
  if strings.TrimSpace(question) == "" {
    return "", fmt.Errorf("Question is required")
  }
  answer, err := cs.aiClient.ChatText(ctx, studyGroupSystemMessage, question)
  if err != nil {
    return "", fmt.Errorf("Failed to get chatbot answer: %w", err)
  }
  return answer, nil
}
