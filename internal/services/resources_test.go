package services

import (
	"context"
	"errors"
	"testing"
)

type fakeSearchClient struct {
	available bool
	results   map[string][]SearchResult
	errs      map[string]error
}

func (f *fakeSearchClient) Available() bool {
	return f.available
}

func (f *fakeSearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

func newTestResourceService(t *testing.T, search SearchClient, ai AIClient) ResourceService {
	t.Helper()
	log := testLogger(t)
	return NewResourceService(log, search, NewPromptService(log), ai)
}

func TestBuildResourceQueries(t *testing.T) {
	queries := buildResourceQueries("Go", nil)
	if len(queries) != 4 {
		t.Fatalf("len=%d, want 4 generic queries", len(queries))
	}

	queries = buildResourceQueries("Go", []string{"syntax", "concurrency", "testing", "modules", "generics"})
	if len(queries) != maxResourceQueries {
		t.Fatalf("len=%d, want cap of %d", len(queries), maxResourceQueries)
	}
	if queries[4] != "Go syntax" {
		t.Fatalf("queries[4]=%q", queries[4])
	}
}

func TestFindResourcesDeduplicatesByURL(t *testing.T) {
	search := &fakeSearchClient{
		available: true,
		results: map[string][]SearchResult{
			"learn Go":    {{Title: "Tour of Go", Snippet: "official", Link: "https://go.dev/tour"}},
			"Go tutorial": {{Title: "A Tour of Go", Snippet: "the same page", Link: "https://go.dev/tour"}},
		},
	}
	rs := newTestResourceService(t, search, &fakeAIClient{
		obj: map[string]any{"resources": []any{}},
		raw: "{}",
	})

	resources := rs.FindResources(context.Background(), "Go", nil)
	count := 0
	for _, r := range resources {
		if r.URL == "https://go.dev/tour" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicate URL appeared %d times", count)
	}
}

func TestFindResourcesOrderingAndCap(t *testing.T) {
	results := []SearchResult{}
	for i := 0; i < 8; i++ {
		results = append(results, SearchResult{
			Title: "blog",
			Link:  "https://blog.example.com/" + string(rune('a'+i)),
		})
	}
	results = append(results,
		SearchResult{Title: "course", Link: "https://www.coursera.org/learn/go"},
		SearchResult{Title: "docs", Link: "https://go.dev/docs/tutorial"},
		SearchResult{Title: "more blog", Link: "https://blog.example.com/zz"},
	)
	search := &fakeSearchClient{
		available: true,
		results:   map[string][]SearchResult{"learn Go": results},
	}
	rs := newTestResourceService(t, search, &fakeAIClient{
		obj: map[string]any{"resources": []any{}},
		raw: "{}",
	})

	resources := rs.FindResources(context.Background(), "Go", nil)
	if len(resources) != maxResources {
		t.Fatalf("len=%d, want cap of %d", len(resources), maxResources)
	}
	if resources[0].Type != "documentation" {
		t.Fatalf("resources[0].Type=%q, want documentation first", resources[0].Type)
	}
	if resources[1].Type != "course" {
		t.Fatalf("resources[1].Type=%q, want course second", resources[1].Type)
	}
}

func TestFindResourcesModelFallbackWhenSearchUnavailable(t *testing.T) {
	ai := &fakeAIClient{
		obj: map[string]any{
			"resources": []any{
				map[string]any{"title": "Go docs", "description": "official docs", "url": "https://go.dev/doc", "type": "documentation"},
				map[string]any{"title": "Go course", "description": "a course", "url": "https://example.com/course", "type": "course"},
				map[string]any{"title": "Blog A", "description": "", "url": "https://a.example.com", "type": ""},
				map[string]any{"title": "Blog B", "description": "", "url": "https://b.example.com", "type": ""},
				map[string]any{"title": "Blog C", "description": "", "url": "https://c.example.com", "type": ""},
			},
		},
		raw: "{}",
	}
	rs := newTestResourceService(t, &fakeSearchClient{available: false}, ai)

	resources := rs.FindResources(context.Background(), "Go", nil)
	if len(resources) != 5 {
		t.Fatalf("len=%d, want 5 unique suggestions", len(resources))
	}
	if ai.calls != 1 {
		t.Fatalf("calls=%d, want early stop after reaching %d resources", ai.calls, resourceTargetCount)
	}
	for _, r := range resources {
		if r.Subtopic == "" {
			t.Fatalf("resource %q missing originating query tag", r.URL)
		}
	}
}

func TestFindResourcesSwallowsQueryFailures(t *testing.T) {
	search := &fakeSearchClient{
		available: true,
		results: map[string][]SearchResult{
			"Go tutorial": {{Title: "Tutorial", Link: "https://example.com/tutorial"}},
		},
		errs: map[string]error{
			"learn Go": errors.New("search http 500"),
		},
	}
	rs := newTestResourceService(t, search, &fakeAIClient{err: errors.New("model down")})

	resources := rs.FindResources(context.Background(), "Go", nil)
	found := false
	for _, r := range resources {
		if r.URL == "https://example.com/tutorial" {
			found = true
		}
	}
	if !found {
		t.Fatalf("surviving query's result missing: %v", resources)
	}
}

func TestFindResourcesEmptyResultIsValid(t *testing.T) {
	rs := newTestResourceService(t, &fakeSearchClient{available: false}, &fakeAIClient{err: errors.New("model down")})
	resources := rs.FindResources(context.Background(), "Go", nil)
	if resources == nil {
		t.Fatalf("result must be an empty list, not nil")
	}
	if len(resources) != 0 {
		t.Fatalf("len=%d, want 0", len(resources))
	}
}
