package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

const degradedOverview = "We encountered an issue formatting your study plan. Here's the raw plan:"

type PlannerService interface {
  GenerateStudyPlan(ctx context.Context, course *types.Course, files []*types.CourseFile) (*types.StudyPlan, error)
  GenerateRoadmap(ctx context.Context, topic string, durationWeeks int) (*types.LearningRoadmap, error)
}

type plannerService struct {
  log        *logger.Logger
  extraction ExtractionService
  classifier SyllabusClassifier
  prompts    PromptService
  aiClient   AIClient
}

func NewPlannerService(
  log *logger.Logger,
  extraction ExtractionService,
  classifier SyllabusClassifier,
  prompts PromptService,
  aiClient AIClient,
) PlannerService {
  serviceLog := log.With("service", "PlannerService")
  return &plannerService{
    log:        serviceLog,
    extraction: extraction,
    classifier: classifier,
    prompts:    prompts,
    aiClient:   aiClient,
  }
}

// GenerateStudyPlan runs the full pipeline: extract, classify, prompt, generate,
// repair. The only error it returns is a missing course name; model and parse
// failures degrade to a structurally complete plan instead.
func (ps *plannerService) GenerateStudyPlan(ctx context.Context, course *types.Course, files []*types.CourseFile) (*types.StudyPlan, error) {
  if course == nil || strings.TrimSpace(course.Name) == "" {
    return nil, fmt.Errorf("Course name is required")
  }

  documents := make([]ExtractedDocument, 0, len(files))
  isSyllabus := false
  for _, file := range files {
    doc := ps.extraction.Extract(ctx, file)
    documents = append(documents, doc)
    if !doc.Degraded && ps.classifier.IsSyllabus(doc.SourceName, doc.Text) {
      isSyllabus = true
    }
  }

  prompt := ps.prompts.BuildStudyPlanPrompt(course, documents, isSyllabus)
  obj, raw := ps.generateObject(ctx, prompt)

  plan := &types.StudyPlan{}
  if obj == nil || !decodeInto(obj, plan) {
    plan = &types.StudyPlan{
      Overview: degradedOverview,
      RawPlan:  raw,
    }
  }
  plan.EnsureShape()
  return plan, nil
}

// GenerateRoadmap builds a plan from a free-text topic instead of uploaded
// files. Same degradation contract as GenerateStudyPlan.
func (ps *plannerService) GenerateRoadmap(ctx context.Context, topic string, durationWeeks int) (*types.LearningRoadmap, error) {
  if strings.TrimSpace(topic) == "" {
    return nil, fmt.Errorf("Topic is required")
  }
  if durationWeeks <= 0 {
    durationWeeks = 4
  }

  prompt := ps.prompts.BuildRoadmapPrompt(topic, durationWeeks)
  obj, raw := ps.generateObject(ctx, prompt)

  roadmap := &types.LearningRoadmap{}
  if obj == nil || !decodeInto(obj, roadmap) {
    roadmap = &types.LearningRoadmap{
      StudyPlan: types.StudyPlan{
        Overview: degradedOverview,
        RawPlan:  raw,
      },
    }
  }
  roadmap.EnsureShape()
  return roadmap, nil
}

// generateObject calls the model and walks the repair chain over its raw text
// when the structured output did not parse. Both results nil/"" means the call
// itself failed.
func (ps *plannerService) generateObject(ctx context.Context, prompt Prompt) (map[string]any, string) {
  obj, raw, err := ps.aiClient.GenerateJSON(ctx, prompt.SystemMessage, prompt.UserMessage, prompt.SchemaName, prompt.Schema)
  if err == nil && obj != nil {
    return obj, raw
  }
  if raw != "" {
    repaired, rErr := repairAndParse(raw)
    if rErr == nil {
      return repaired, raw
    }
    ps.log.Warn("Model output unrecoverable, returning degraded plan", "schema", prompt.SchemaName, "error", rErr)
    return nil, raw
  }
  ps.log.Warn("Model call failed, returning degraded plan", "schema", prompt.SchemaName, "error", err)
  return nil, ""
}

// decodeInto round-trips a parsed object into the typed plan shape.
func decodeInto(obj map[string]any, out any) bool {
  data, err := json.Marshal(obj)
  if err != nil {
    return false
  }
  return json.Unmarshal(data, out) == nil
}
