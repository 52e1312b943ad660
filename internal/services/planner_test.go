package services

import (
	"context"
	"errors"
	"testing"

	"github.com/studygenius/backend/internal/types"
)

type fakeAIClient struct {
	obj  map[string]any
	raw  string
	err  error
	chat string

	calls int
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, string, error) {
	f.calls++
	return f.obj, f.raw, f.err
}

func (f *fakeAIClient) ChatText(ctx context.Context, system, user string) (string, error) {
	return f.chat, f.err
}

func newTestPlanner(t *testing.T, ai AIClient) PlannerService {
	t.Helper()
	log := testLogger(t)
	extraction := NewExtractionService(log, &fakeBucket{files: map[string][]byte{}})
	classifier := NewSyllabusClassifier(log)
	prompts := NewPromptService(log)
	return NewPlannerService(log, extraction, classifier, prompts, ai)
}

func TestGenerateStudyPlanRequiresCourseName(t *testing.T) {
	planner := newTestPlanner(t, &fakeAIClient{})
	if _, err := planner.GenerateStudyPlan(context.Background(), &types.Course{}, nil); err == nil {
		t.Fatalf("expected validation error for missing course name")
	}
}

func TestGenerateStudyPlanValidOutput(t *testing.T) {
	ai := &fakeAIClient{
		obj: map[string]any{
			"overview": "four weeks of physics",
			"topics": []any{
				map[string]any{"title": "Kinematics", "description": "motion", "priority": "High"},
			},
			"schedule": map[string]any{
				"weeks": []any{
					map[string]any{"days": []any{
						map[string]any{"day": "Monday", "duration": "2 hours", "activities": []any{"read chapter 1"}},
					}},
				},
			},
			"techniques": []any{},
			"resources":  []any{},
		},
		raw: `{"overview":"four weeks of physics"}`,
	}
	planner := newTestPlanner(t, ai)

	plan, err := planner.GenerateStudyPlan(context.Background(), &types.Course{Name: "Intro Physics"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Overview != "four weeks of physics" {
		t.Fatalf("overview=%q", plan.Overview)
	}
	if len(plan.Topics) != 1 || plan.Topics[0].Title != "Kinematics" {
		t.Fatalf("topics=%v", plan.Topics)
	}
	if len(plan.Schedule.Weeks) != 1 || len(plan.Schedule.Weeks[0].Days) != 1 {
		t.Fatalf("schedule=%v", plan.Schedule)
	}
	if plan.Techniques == nil || plan.Resources == nil {
		t.Fatalf("arrays must be non-nil")
	}
}

func TestGenerateStudyPlanRepairsRawOutput(t *testing.T) {
	ai := &fakeAIClient{
		obj: nil,
		raw: "{ \"overview\": \"repaired\", } // comment",
		err: errors.New("failed to parse model JSON"),
	}
	planner := newTestPlanner(t, ai)

	plan, err := planner.GenerateStudyPlan(context.Background(), &types.Course{Name: "Chem"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Overview != "repaired" {
		t.Fatalf("overview=%q, want repaired output", plan.Overview)
	}
	if plan.Topics == nil || plan.Schedule.Weeks == nil || plan.Techniques == nil || plan.Resources == nil {
		t.Fatalf("arrays must be non-nil after repair")
	}
}

func TestGenerateStudyPlanDegradesOnUnrecoverableOutput(t *testing.T) {
	ai := &fakeAIClient{
		obj: nil,
		raw: "sorry, I cannot help with that",
		err: errors.New("failed to parse model JSON"),
	}
	planner := newTestPlanner(t, ai)

	plan, err := planner.GenerateStudyPlan(context.Background(), &types.Course{Name: "Chem"}, nil)
	if err != nil {
		t.Fatalf("degraded output must not be an error: %v", err)
	}
	if plan.Overview != degradedOverview {
		t.Fatalf("overview=%q, want degraded message", plan.Overview)
	}
	if plan.RawPlan != "sorry, I cannot help with that" {
		t.Fatalf("rawPlan=%q, want original model text", plan.RawPlan)
	}
	if plan.Topics == nil || len(plan.Topics) != 0 {
		t.Fatalf("topics=%v, want empty array", plan.Topics)
	}
	if plan.Schedule.Weeks == nil || len(plan.Schedule.Weeks) != 0 {
		t.Fatalf("weeks=%v, want empty array", plan.Schedule.Weeks)
	}
	if plan.Resources == nil || plan.Techniques == nil {
		t.Fatalf("arrays must be non-nil on degraded output")
	}
}

func TestGenerateStudyPlanDegradesOnTransportFailure(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("openai http 500: boom")}
	planner := newTestPlanner(t, ai)

	plan, err := planner.GenerateStudyPlan(context.Background(), &types.Course{Name: "Chem"}, nil)
	if err != nil {
		t.Fatalf("model failure must not be an error: %v", err)
	}
	if plan.Overview != degradedOverview {
		t.Fatalf("overview=%q, want degraded message", plan.Overview)
	}
	if plan.Topics == nil || plan.Resources == nil {
		t.Fatalf("arrays must be non-nil on degraded output")
	}
}

func TestGenerateRoadmap(t *testing.T) {
	ai := &fakeAIClient{
		obj: map[string]any{
			"overview":   "learn go in 4 weeks",
			"topics":     []any{},
			"schedule":   map[string]any{"weeks": []any{}},
			"techniques": []any{},
			"resources":  []any{},
			"mainTopics": []any{"syntax", "concurrency"},
		},
		raw: "{}",
	}
	planner := newTestPlanner(t, ai)

	roadmap, err := planner.GenerateRoadmap(context.Background(), "Go", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roadmap.MainTopics) != 2 {
		t.Fatalf("mainTopics=%v", roadmap.MainTopics)
	}

	if _, err := planner.GenerateRoadmap(context.Background(), "  ", 4); err == nil {
		t.Fatalf("expected validation error for empty topic")
	}
}
