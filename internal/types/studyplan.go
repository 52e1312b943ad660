package types

// StudyPlan is the JSON shape the plan generator always returns. UI code
// iterates every array field unconditionally, so all of them must be
// non-nil on every return path, including degraded output.
type StudyPlan struct {
  Overview    string       `json:"overview"`
  Topics      []PlanTopic  `json:"topics"`
  Schedule    Schedule     `json:"schedule"`
  Techniques  []Technique  `json:"techniques"`
  Resources   []Resource   `json:"resources"`
  RawPlan     string       `json:"rawPlan,omitempty"`
}

type PlanTopic struct {
  Title        string   `json:"title"`
  Description  string   `json:"description"`
  Priority     string   `json:"priority"`
}

type Schedule struct {
  Weeks  []ScheduleWeek  `json:"weeks"`
}

type ScheduleWeek struct {
  Days  []ScheduleDay  `json:"days"`
}

type ScheduleDay struct {
  Day         string    `json:"day"`
  Duration    string    `json:"duration"`
  Activities  []string  `json:"activities"`
}

type Technique struct {
  Name         string   `json:"name"`
  Description  string   `json:"description"`
}

type Resource struct {
  Title        string   `json:"title"`
  Description  string   `json:"description"`
  URL          string   `json:"url"`
  Type         string   `json:"type,omitempty"`
  Subtopic     string   `json:"subtopic,omitempty"`
}

// LearningRoadmap is a StudyPlan generated from a free-text topic instead
// of uploaded files. MainTopics drives the resource search fan-out.
type LearningRoadmap struct {
  StudyPlan
  MainTopics  []string  `json:"mainTopics"`
}

// EnsureShape fills any nil array field so consumers can iterate safely.
func (p *StudyPlan) EnsureShape() {
  if p.Topics == nil {
    p.Topics = []PlanTopic{}
  }
  if p.Schedule.Weeks == nil {
    p.Schedule.Weeks = []ScheduleWeek{}
  }
  for i := range p.Schedule.Weeks {
    if p.Schedule.Weeks[i].Days == nil {
      p.Schedule.Weeks[i].Days = []ScheduleDay{}
    }
    for j := range p.Schedule.Weeks[i].Days {
      if p.Schedule.Weeks[i].Days[j].Activities == nil {
        p.Schedule.Weeks[i].Days[j].Activities = []string{}
      }
    }
  }
  if p.Techniques == nil {
    p.Techniques = []Technique{}
  }
  if p.Resources == nil {
    p.Resources = []Resource{}
  }
}

func (r *LearningRoadmap) EnsureShape() {
  r.StudyPlan.EnsureShape()
  if r.MainTopics == nil {
    r.MainTopics = []string{}
  }
}
