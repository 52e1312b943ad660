package services

import (
  "context"
  "fmt"
  "strings"
  "unicode/utf8"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

// maxExtractChars bounds prompt context size. Hard truncation, not summarization.
const maxExtractChars = 10000

// ExtractedDocument is the ephemeral output of text extraction. Degraded marks
// content that could not be extracted; Text then carries a bracketed diagnostic
// placeholder safe to show to users or feed to the model as low-confidence input.
type ExtractedDocument struct {
  SourceName  string
  Text        string
  ContentType string
  Degraded    bool
  Reason      string
}

type ExtractionService interface {
  Extract(ctx context.Context, file *types.CourseFile) ExtractedDocument
}

type extractionService struct {
  log           *logger.Logger
  bucketService BucketService
}

func NewExtractionService(log *logger.Logger, bucketService BucketService) ExtractionService {
  serviceLog := log.With("service", "ExtractionService")
  return &extractionService{log: serviceLog, bucketService: bucketService}
}

// Extract never returns an error: fetch or decode failures produce a degraded
// document instead so plan generation can proceed with whatever is usable.
func (es *extractionService) Extract(ctx context.Context, file *types.CourseFile) ExtractedDocument {
  data, err := es.bucketService.DownloadFile(ctx, file.StorageKey)
  if err != nil {
    es.log.Warn("Failed to fetch file for extraction", "file_id", file.ID.String(), "error", err)
    return degradedDocument(file, "could not fetch the file")
  }
  if !utf8.Valid(data) {
    es.log.Warn("File content is not valid text", "file_id", file.ID.String(), "mime_type", file.MimeType)
    return degradedDocument(file, fmt.Sprintf("unsupported format %q", file.MimeType))
  }
  text := strings.TrimSpace(string(data))
  if text == "" {
    return degradedDocument(file, "the file contained no readable text")
  }
  return ExtractedDocument{
    SourceName:  file.OriginalName,
    Text:        truncateChars(text, maxExtractChars),
    ContentType: file.MimeType,
  }
}

func degradedDocument(file *types.CourseFile, reason string) ExtractedDocument {
  return ExtractedDocument{
    SourceName:  file.OriginalName,
    Text:        fmt.Sprintf("[Unable to extract content from %s: %s]", file.OriginalName, reason),
    ContentType: file.MimeType,
    Degraded:    true,
    Reason:      reason,
  }
}

func truncateChars(s string, max int) string {
  if max <= 0 {
    return ""
  }
  runes := []rune(s)
  if len(runes) <= max {
    return s
  }
  return string(runes[:max])
}
