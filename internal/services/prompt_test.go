package services

import (
	"strings"
	"testing"
	"time"

	"github.com/studygenius/backend/internal/types"
)

func TestBuildStudyPlanPromptFallbacks(t *testing.T) {
	ps := NewPromptService(testLogger(t))
	course := &types.Course{Name: "Intro Physics"}

	prompt := ps.BuildStudyPlanPrompt(course, nil, false)

	if !strings.Contains(prompt.UserMessage, `"Intro Physics"`) {
		t.Fatalf("user message missing course name: %q", prompt.UserMessage)
	}
	for _, field := range []string{"Course Description: Not specified", "Duration: Not specified", "Difficulty Level: Not specified", "Start Date: Not specified", "End Date: Not specified", "Subject: Not specified"} {
		if !strings.Contains(prompt.UserMessage, field) {
			t.Fatalf("user message missing fallback %q", field)
		}
	}
	if prompt.SchemaName != "study_plan" || prompt.Schema == nil {
		t.Fatalf("schema not attached: %q", prompt.SchemaName)
	}
}

func TestBuildStudyPlanPromptPopulatedFields(t *testing.T) {
	ps := NewPromptService(testLogger(t))
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	course := &types.Course{
		Name:            "Organic Chemistry",
		Description:     "Second-year chemistry",
		Subject:         "Chemistry",
		DifficultyLevel: "medium",
		EstimatedHours:  40,
		StartDate:       &start,
		EndDate:         &end,
	}

	prompt := ps.BuildStudyPlanPrompt(course, nil, false)

	for _, field := range []string{"Course Description: Second-year chemistry", "Duration: 40 hours", "Difficulty Level: Intermediate", "Start Date: 2026-09-01", "End Date: 2026-12-15", "Subject: Chemistry"} {
		if !strings.Contains(prompt.UserMessage, field) {
			t.Fatalf("user message missing %q", field)
		}
	}
}

func TestBuildStudyPlanPromptTruncatesDocuments(t *testing.T) {
	ps := NewPromptService(testLogger(t))
	course := &types.Course{Name: "Big Course"}
	doc := ExtractedDocument{
		SourceName: "huge.txt",
		Text:       strings.Repeat("x", 50000),
	}

	prompt := ps.BuildStudyPlanPrompt(course, []ExtractedDocument{doc}, false)

	if strings.Contains(prompt.UserMessage, strings.Repeat("x", maxExtractChars+1)) {
		t.Fatalf("document text not truncated to %d chars", maxExtractChars)
	}
	if !strings.Contains(prompt.UserMessage, strings.Repeat("x", maxExtractChars)) {
		t.Fatalf("truncated document text missing from prompt")
	}
	if !strings.Contains(prompt.UserMessage, "File: huge.txt") {
		t.Fatalf("document header missing from prompt")
	}
}

func TestBuildStudyPlanPromptTemplateSelection(t *testing.T) {
	ps := NewPromptService(testLogger(t))
	course := &types.Course{Name: "Intro Physics"}

	plain := ps.BuildStudyPlanPrompt(course, nil, false)
	syllabus := ps.BuildStudyPlanPrompt(course, nil, true)

	if plain.SystemMessage == syllabus.SystemMessage {
		t.Fatalf("syllabus flag must switch the system template")
	}
	if !strings.Contains(syllabus.SystemMessage, "syllabus") {
		t.Fatalf("syllabus template missing syllabus instructions")
	}
	if !strings.HasPrefix(syllabus.SystemMessage, studyPlanSystemMessage) {
		t.Fatalf("syllabus template should extend the base template")
	}
}

func TestBuildRoadmapPrompt(t *testing.T) {
	ps := NewPromptService(testLogger(t))

	prompt := ps.BuildRoadmapPrompt("Go", 0)
	if !strings.Contains(prompt.UserMessage, "4 weeks") {
		t.Fatalf("default duration not applied: %q", prompt.UserMessage)
	}
	if prompt.SchemaName != "learning_roadmap" {
		t.Fatalf("schemaName=%q", prompt.SchemaName)
	}
	props, ok := prompt.Schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties")
	}
	if _, ok := props["mainTopics"]; !ok {
		t.Fatalf("roadmap schema missing mainTopics")
	}
}
