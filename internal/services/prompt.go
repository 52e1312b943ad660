package services

import (
  "fmt"
  "strings"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/types"
)

// Prompt is a fully assembled model request: message pair plus the schema
// constraining the structured response.
type Prompt struct {
  SystemMessage string
  UserMessage   string
  SchemaName    string
  Schema        map[string]any
}

type PromptService interface {
  BuildStudyPlanPrompt(course *types.Course, documents []ExtractedDocument, isSyllabus bool) Prompt
  BuildRoadmapPrompt(topic string, durationWeeks int) Prompt
  BuildResourcePrompt(query string) Prompt
}

type promptService struct {
  log *logger.Logger
}

func NewPromptService(log *logger.Logger) PromptService {
  serviceLog := log.With("service", "PromptService")
  return &promptService{log: serviceLog}
}

const studyPlanSystemMessage = `You are an expert educational planner and tutor specialized in creating optimized study plans.
Your task is to analyze the provided course materials and create a comprehensive study plan.
The study plan should include:
1. A weekly schedule for studying the material
2. Key topics to focus on and their priority
3. Recommended study techniques for each topic
4. Practice exercises or questions
5. Milestones and learning goals

Respond with a single JSON object matching the requested schema.`

const syllabusSystemMessage = studyPlanSystemMessage + `

One or more of the provided documents is a course syllabus. Treat it as the authoritative source for the course structure: extract the schedule, assessment weighting, and deadlines it defines, and align the weekly plan to those dates and milestones.`

const roadmapSystemMessage = `You are an expert educational planner specialized in designing self-study learning roadmaps.
Your task is to create a structured roadmap for learning a topic from scratch over a fixed number of weeks.
The roadmap should include the main subtopics to cover, a week-by-week schedule, recommended study techniques, and supporting resources.

Respond with a single JSON object matching the requested schema.`

const resourceSystemMessage = `You are a helpful research assistant. Suggest high-quality learning resources (documentation, courses, tutorials, books) for the requested topic. Only include resources you are confident exist, with real URLs.

Respond with a single JSON object matching the requested schema.`

func (ps *promptService) BuildStudyPlanPrompt(course *types.Course, documents []ExtractedDocument, isSyllabus bool) Prompt {
  var context strings.Builder
  for _, doc := range documents {
    context.WriteString(fmt.Sprintf("File: %s\n%s\n\n", doc.SourceName, truncateChars(doc.Text, maxExtractChars)))
  }

  duration := "Not specified"
  if course.EstimatedHours > 0 {
    duration = fmt.Sprintf("%d hours", course.EstimatedHours)
  }
  startDate := "Not specified"
  if course.StartDate != nil {
    startDate = course.StartDate.Format("2006-01-02")
  }
  endDate := "Not specified"
  if course.EndDate != nil {
    endDate = course.EndDate.Format("2006-01-02")
  }

  userMessage := fmt.Sprintf(`I need a detailed study plan for my course "%s".
Course Description: %s
Duration: %s
Difficulty Level: %s
Start Date: %s
End Date: %s
Subject: %s

Here are the course materials:
%s
Based on these materials, please create a comprehensive study plan that will help me master this subject efficiently.`,
    course.Name,
    orNotSpecified(course.Description),
    duration,
    difficultyLabel(course.DifficultyLevel),
    startDate,
    endDate,
    orNotSpecified(course.Subject),
    context.String(),
  )

  system := studyPlanSystemMessage
  if isSyllabus {
    system = syllabusSystemMessage
  }
  return Prompt{
    SystemMessage: system,
    UserMessage:   userMessage,
    SchemaName:    "study_plan",
    Schema:        studyPlanSchema(),
  }
}

func (ps *promptService) BuildRoadmapPrompt(topic string, durationWeeks int) Prompt {
  if durationWeeks <= 0 {
    durationWeeks = 4
  }
  userMessage := fmt.Sprintf(`Create a learning roadmap for the topic "%s" spread over %d weeks.
List the main subtopics in "mainTopics", build a week-by-week schedule covering them in a sensible order, and include study techniques and starter resources.`,
    topic, durationWeeks)
  return Prompt{
    SystemMessage: roadmapSystemMessage,
    UserMessage:   userMessage,
    SchemaName:    "learning_roadmap",
    Schema:        roadmapSchema(),
  }
}

func (ps *promptService) BuildResourcePrompt(query string) Prompt {
  userMessage := fmt.Sprintf(`Suggest up to 5 learning resources for: %s`, query)
  return Prompt{
    SystemMessage: resourceSystemMessage,
    UserMessage:   userMessage,
    SchemaName:    "resource_list",
    Schema:        resourceListSchema(),
  }
}

func orNotSpecified(s string) string {
  if strings.TrimSpace(s) == "" {
    return "Not specified"
  }
  return s
}

func difficultyLabel(level string) string {
  switch strings.ToLower(strings.TrimSpace(level)) {
  case "beginner":
    return "Beginner"
  case "medium", "intermediate":
    return "Intermediate"
  case "advanced":
    return "Advanced"
  default:
    return "Not specified"
  }
}

func studyPlanSchema() map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "overview": map[string]any{"type": "string"},
      "topics": map[string]any{
        "type": "array",
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "title":       map[string]any{"type": "string"},
            "description": map[string]any{"type": "string"},
            "priority":    map[string]any{"type": "string", "enum": []string{"High", "Medium", "Low"}},
          },
          "required":             []string{"title", "description", "priority"},
          "additionalProperties": false,
        },
      },
      "schedule": map[string]any{
        "type": "object",
        "properties": map[string]any{
          "weeks": map[string]any{
            "type": "array",
            "items": map[string]any{
              "type": "object",
              "properties": map[string]any{
                "days": map[string]any{
                  "type": "array",
                  "items": map[string]any{
                    "type": "object",
                    "properties": map[string]any{
                      "day":        map[string]any{"type": "string"},
                      "duration":   map[string]any{"type": "string"},
                      "activities": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
                    },
                    "required":             []string{"day", "duration", "activities"},
                    "additionalProperties": false,
                  },
                },
              },
              "required":             []string{"days"},
              "additionalProperties": false,
            },
          },
        },
        "required":             []string{"weeks"},
        "additionalProperties": false,
      },
      "techniques": map[string]any{
        "type": "array",
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "name":        map[string]any{"type": "string"},
            "description": map[string]any{"type": "string"},
          },
          "required":             []string{"name", "description"},
          "additionalProperties": false,
        },
      },
      "resources": map[string]any{
        "type": "array",
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "title":       map[string]any{"type": "string"},
            "description": map[string]any{"type": "string"},
            "url":         map[string]any{"type": "string"},
          },
          "required":             []string{"title", "description", "url"},
          "additionalProperties": false,
        },
      },
    },
    "required":             []string{"overview", "topics", "schedule", "techniques", "resources"},
    "additionalProperties": false,
  }
}

func roadmapSchema() map[string]any {
  schema := studyPlanSchema()
  props := schema["properties"].(map[string]any)
  props["mainTopics"] = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
  schema["required"] = []string{"overview", "topics", "schedule", "techniques", "resources", "mainTopics"}
  return schema
}

func resourceListSchema() map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "resources": map[string]any{
        "type": "array",
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "title":       map[string]any{"type": "string"},
            "description": map[string]any{"type": "string"},
            "url":         map[string]any{"type": "string"},
            "type":        map[string]any{"type": "string"},
          },
          "required":             []string{"title", "description", "url", "type"},
          "additionalProperties": false,
        },
      },
    },
    "required":             []string{"resources"},
    "additionalProperties": false,
  }
}
