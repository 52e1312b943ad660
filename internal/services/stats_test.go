package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"github.com/studygenius/backend/internal/types"
)

func TestCourseProgress(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) *time.Time {
		ts := today.AddDate(0, 0, -d)
		return &ts
	}
	daysAhead := func(d int) *time.Time {
		ts := today.AddDate(0, 0, d)
		return &ts
	}

	courses := []*types.Course{
		{ID: uuid.New(), Name: "no dates"},
		{ID: uuid.New(), Name: "not started", StartDate: daysAhead(1), EndDate: daysAhead(30)},
		{ID: uuid.New(), Name: "halfway", StartDate: daysAgo(10), EndDate: daysAhead(10)},
		{ID: uuid.New(), Name: "finished", StartDate: daysAgo(60), EndDate: daysAgo(30)},
		{ID: uuid.New(), Name: "just started", StartDate: daysAgo(0), EndDate: daysAhead(100)},
	}

	progress := courseProgress(courses, today)
	if len(progress) != 3 {
		t.Fatalf("len=%d, want 3 (dateless and future courses skipped)", len(progress))
	}
	if progress[0].Name != "finished" || progress[0].Progress != 100 {
		t.Fatalf("progress[0]=%+v, want finished course capped at 100", progress[0])
	}
	if progress[1].Name != "halfway" || progress[1].Progress != 50 {
		t.Fatalf("progress[1]=%+v, want 50%%", progress[1])
	}
	if progress[2].Name != "just started" || progress[2].Progress != 5 {
		t.Fatalf("progress[2]=%+v, want 5%% floor", progress[2])
	}
}

func TestUpcomingTasksFromSavedPlan(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // a Monday
	start := today
	plan := types.StudyPlan{
		Overview: "plan",
		Schedule: types.Schedule{
			Weeks: []types.ScheduleWeek{
				{Days: []types.ScheduleDay{
					{Day: "Monday", Duration: "2 hours", Activities: []string{"read chapter 1", "take notes"}},
					{Day: "Friday", Duration: "1 hour", Activities: []string{"review"}},
					{Day: "Someday", Duration: "1 hour", Activities: []string{"ignored"}},
				}},
			},
		},
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	course := &types.Course{
		ID:        uuid.New(),
		Name:      "Physics",
		StartDate: &start,
		StudyPlan: datatypes.JSON(raw),
	}

	tasks := upcomingTasks([]*types.Course{course}, today)
	if len(tasks) != 3 {
		t.Fatalf("len=%d, want 3 (unknown day name skipped)", len(tasks))
	}
	if tasks[0].DueDate != "Today" || tasks[0].Priority != "high" {
		t.Fatalf("tasks[0]=%+v, want today's task first", tasks[0])
	}
	if tasks[2].Title != "review" || tasks[2].DueDate != "Friday" {
		t.Fatalf("tasks[2]=%+v, want Friday task last", tasks[2])
	}
}

func TestRecommendationType(t *testing.T) {
	cases := []struct {
		name     string
		resource types.Resource
		want     string
	}{
		{name: "youtube", resource: types.Resource{URL: "https://youtube.com/watch?v=1"}, want: "Video"},
		{name: "video_in_description", resource: types.Resource{Description: "A video walkthrough"}, want: "Video"},
		{name: "quiz", resource: types.Resource{URL: "https://example.com/quiz/1"}, want: "Quiz"},
		{name: "slides", resource: types.Resource{Description: "Lecture slides"}, want: "Slides"},
		{name: "default_article", resource: types.Resource{URL: "https://example.com/post"}, want: "Article"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := recommendationType(tc.resource)
			if got != tc.want {
				t.Fatalf("recommendationType(%+v)=%q, want %q", tc.resource, got, tc.want)
			}
		})
	}
}
