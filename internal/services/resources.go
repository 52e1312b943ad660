package services

import (
  "context"
  "fmt"
  "sort"
  "strings"
  "sync"
  "golang.org/x/sync/errgroup"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

// resourceTargetCount is the "good enough" cutoff: once this many unique
// resources are collected, the model fallback stops early.
const resourceTargetCount = 5

// maxResources caps the final returned list.
const maxResources = 10

// maxResourceQueries bounds the search fan-out per invocation.
const maxResourceQueries = 7

type ResourceService interface {
  FindResources(ctx context.Context, topic string, subtopics []string) []types.Resource
}

type resourceService struct {
  log      *logger.Logger
  search   SearchClient
  prompts  PromptService
  aiClient AIClient
}

func NewResourceService(log *logger.Logger, search SearchClient, prompts PromptService, aiClient AIClient) ResourceService {
  serviceLog := log.With("service", "ResourceService")
  return &resourceService{
    log:      serviceLog,
    search:   search,
    prompts:  prompts,
    aiClient: aiClient,
  }
}

// FindResources collects supplementary learning resources for a topic. Search
// queries fan out concurrently; individual failures are logged and swallowed.
// An empty list is a valid outcome.
func (rs *resourceService) FindResources(ctx context.Context, topic string, subtopics []string) []types.Resource {
  queries := buildResourceQueries(topic, subtopics)

  collected := []types.Resource{}
  seen := map[string]bool{}

  if rs.search.Available() {
    var mu sync.Mutex
    g, gctx := errgroup.WithContext(ctx)
    for _, query := range queries {
      query := query
      g.Go(func() error {
        results, err := rs.search.Search(gctx, query)
        if err != nil {
          rs.log.Warn("Search query failed", "query", query, "error", err)
          return nil
        }
        mu.Lock()
        defer mu.Unlock()
        for _, r := range results {
          if seen[r.Link] {
            continue
          }
          seen[r.Link] = true
          collected = append(collected, types.Resource{
            Title:       r.Title,
            Description: r.Snippet,
            URL:         r.Link,
            Type:        inferResourceType(r.Link),
            Subtopic:    query,
          })
        }
        return nil
      })
    }
    _ = g.Wait()
  }

  // Model fallback when the search provider is missing or under-yields.
  if len(collected) < resourceTargetCount {
    for _, query := range queries {
      if len(collected) >= resourceTargetCount {
        break
      }
      suggestions, err := rs.suggestFromModel(ctx, query)
      if err != nil {
        rs.log.Warn("Model resource suggestion failed", "query", query, "error", err)
        continue
      }
      for _, r := range suggestions {
        if r.URL == "" || seen[r.URL] {
          continue
        }
        seen[r.URL] = true
        r.Subtopic = query
        collected = append(collected, r)
      }
    }
  }

  return orderResources(collected)
}

func (rs *resourceService) suggestFromModel(ctx context.Context, query string) ([]types.Resource, error) {
  prompt := rs.prompts.BuildResourcePrompt(query)
  obj, raw, err := rs.aiClient.GenerateJSON(ctx, prompt.SystemMessage, prompt.UserMessage, prompt.SchemaName, prompt.Schema)
  if err != nil || obj == nil {
    if raw != "" {
      repaired, rErr := repairAndParse(raw)
      if rErr != nil {
        return nil, fmt.Errorf("malformed resource suggestions: %w", rErr)
      }
      obj = repaired
    } else {
      return nil, err
    }
  }
  var parsed struct {
    Resources []types.Resource `json:"resources"`
  }
  if !decodeInto(obj, &parsed) {
    return nil, fmt.Errorf("resource suggestions did not match expected shape")
  }
  return parsed.Resources, nil
}

// buildResourceQueries yields 4-7 search terms: generic variants of the topic
// plus one per subtopic up to the fan-out cap.
func buildResourceQueries(topic string, subtopics []string) []string {
  topic = strings.TrimSpace(topic)
  queries := []string{
    fmt.Sprintf("learn %s", topic),
    fmt.Sprintf("%s tutorial", topic),
    fmt.Sprintf("%s online course", topic),
    fmt.Sprintf("%s documentation", topic),
  }
  for _, sub := range subtopics {
    sub = strings.TrimSpace(sub)
    if sub == "" {
      continue
    }
    if len(queries) >= maxResourceQueries {
      break
    }
    queries = append(queries, fmt.Sprintf("%s %s", topic, sub))
  }
  return queries
}

func inferResourceType(url string) string {
  lower := strings.ToLower(url)
  switch {
  case strings.Contains(lower, "docs.") || strings.Contains(lower, "/docs") ||
    strings.Contains(lower, "documentation") || strings.Contains(lower, "developer.mozilla.org"):
    return "documentation"
  case strings.Contains(lower, "coursera") || strings.Contains(lower, "udemy") ||
    strings.Contains(lower, "edx.org") || strings.Contains(lower, "khanacademy") ||
    strings.Contains(lower, "/course"):
    return "course"
  default:
    return ""
  }
}

// orderResources sorts documentation first, then courses, then everything else
// in discovery order, capped at maxResources.
func orderResources(resources []types.Resource) []types.Resource {
  rank := func(t string) int {
    switch t {
    case "documentation":
      return 0
    case "course":
      return 1
    default:
      return 2
    }
  }
  sort.SliceStable(resources, func(i, j int) bool {
    return rank(resources[i].Type) < rank(resources[j].Type)
  })
  if len(resources) > maxResources {
    resources = resources[:maxResources]
  }
  return resources
}
