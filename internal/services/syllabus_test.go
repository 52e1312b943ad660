package services

import (
	"testing"

	"github.com/studygenius/backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func TestIsSyllabus(t *testing.T) {
	sc := NewSyllabusClassifier(testLogger(t))

	cases := []struct {
		name     string
		filename string
		text     string
		want     bool
	}{
		{
			name:     "syllabus_in_filename",
			filename: "CS101_Syllabus.pdf",
			text:     "nothing relevant here",
			want:     true,
		},
		{
			name:     "outline_in_filename",
			filename: "week1_outline.docx",
			text:     "",
			want:     true,
		},
		{
			name:     "filename_case_insensitive",
			filename: "INTRO-SYLLABUS-FINAL.PDF",
			text:     "",
			want:     true,
		},
		{
			name:     "two_keywords_not_enough",
			filename: "notes.pdf",
			text:     "The grading policy is strict. Office hours are on Tuesdays.",
			want:     false,
		},
		{
			name:     "three_keywords_is_enough",
			filename: "notes.pdf",
			text:     "The grading policy is strict. Office hours are on Tuesdays. See the course schedule for dates.",
			want:     true,
		},
		{
			name:     "repeated_keyword_counts_once",
			filename: "notes.pdf",
			text:     "grading policy grading policy grading policy",
			want:     false,
		},
		{
			name:     "plain_lecture_notes",
			filename: "lecture3.txt",
			text:     "Today we cover recursion and dynamic programming.",
			want:     false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sc.IsSyllabus(tc.filename, tc.text)
			if got != tc.want {
				t.Fatalf("IsSyllabus(%q, ...)=%v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}
