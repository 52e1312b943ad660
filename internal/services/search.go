package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "time"
  "github.com/studygenius/backend/internal/logger"
)

// SearchResult is one organic web-search hit.
type SearchResult struct {
  Title   string
  Snippet string
  Link    string
}

type SearchClient interface {
  Available() bool
  Search(ctx context.Context, query string) ([]SearchResult, error)
}

type serperClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  httpClient *http.Client
}

// NewSearchClient returns a client backed by the Serper search API. The client
// is always constructed; Available reports whether an API key is configured so
// callers can degrade gracefully without one.
func NewSearchClient(log *logger.Logger) SearchClient {
  serviceLog := log.With("service", "SearchClient")
  baseURL := os.Getenv("SERPER_BASE_URL")
  if baseURL == "" {
    baseURL = "https://google.serper.dev"
  }
  return &serperClient{
    log:        serviceLog,
    baseURL:    baseURL,
    apiKey:     os.Getenv("SERPER_API_KEY"),
    httpClient: &http.Client{Timeout: 10 * time.Second},
  }
}

func (sc *serperClient) Available() bool {
  return sc.apiKey != ""
}

type serperRequest struct {
  Query string `json:"q"`
}

type serperResponse struct {
  Organic []struct {
    Title   string `json:"title"`
    Snippet string `json:"snippet"`
    Link    string `json:"link"`
  } `json:"organic"`
}

func (sc *serperClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
  if !sc.Available() {
    return nil, fmt.Errorf("search provider not configured")
  }
  body, err := json.Marshal(serperRequest{Query: query})
  if err != nil {
    return nil, err
  }
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.baseURL+"/search", bytes.NewReader(body))
  if err != nil {
    return nil, err
  }
  req.Header.Set("X-API-KEY", sc.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := sc.httpClient.Do(req)
  if err != nil {
    return nil, fmt.Errorf("Failed to execute search: %w", err)
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, fmt.Errorf("Failed to read search response: %w", err)
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, fmt.Errorf("search http %d: %s", resp.StatusCode, string(raw))
  }

  var parsed serperResponse
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return nil, fmt.Errorf("Failed to decode search response: %w", err)
  }
  results := make([]SearchResult, 0, len(parsed.Organic))
  for _, item := range parsed.Organic {
    if item.Link == "" {
      continue
    }
    results = append(results, SearchResult{Title: item.Title, Snippet: item.Snippet, Link: item.Link})
  }
  return results, nil
}
