package services

import (
	"testing"
)

func TestRepairAndParse(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantKey string
		wantVal string
		wantErr bool
	}{
		{
			name:    "valid_json",
			input:   `{"overview": "x"}`,
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "trailing_comma_and_line_comment",
			input:   "{ \"overview\": \"x\", } // trailing comment",
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "block_comment",
			input:   "{ /* generated */ \"overview\": \"x\" }",
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "trailing_comma_in_array",
			input:   `{"overview": "x", "topics": ["a", "b",]}`,
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "object_embedded_in_prose",
			input:   "Sure! Here is your plan:\n{\"overview\": \"x\"}\nHope that helps.",
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "fenced_code_block",
			input:   "```json\n{\"overview\": \"x\"}\n```",
			wantKey: "overview",
			wantVal: "x",
		},
		{
			name:    "slashes_inside_strings_survive",
			input:   `{"overview": "see https://example.com/docs"}`,
			wantKey: "overview",
			wantVal: "see https://example.com/docs",
		},
		{
			name:    "unrecoverable",
			input:   "I could not generate a plan, sorry.",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj, err := repairAndParse(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("repairAndParse(%q) expected error, got %v", tc.input, obj)
				}
				return
			}
			if err != nil {
				t.Fatalf("repairAndParse(%q) unexpected error: %v", tc.input, err)
			}
			got, ok := obj[tc.wantKey].(string)
			if !ok || got != tc.wantVal {
				t.Fatalf("repairAndParse(%q)[%q]=%v, want %q", tc.input, tc.wantKey, obj[tc.wantKey], tc.wantVal)
			}
		})
	}
}

func TestStripJSONComments(t *testing.T) {
	in := "{\n  \"a\": \"http://x//y\", // keep url\n  /* block */ \"b\": 2\n}"
	out := stripJSONComments(in)
	if out == in {
		t.Fatalf("expected comments stripped")
	}
	if obj, err := parseObject(out); err != nil {
		t.Fatalf("stripped output should parse: %v (out=%q)", err, out)
	} else if obj["a"] != "http://x//y" {
		t.Fatalf("url inside string was mangled: %v", obj["a"])
	}
}
