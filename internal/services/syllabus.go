package services

import (
  "strings"
  "github.com/studygenius/backend/internal/logger"
)

// syllabusKeywordThreshold is the number of distinct lexicon hits needed to
// classify a document as a syllabus by content alone. Changing it changes
// which documents get syllabus-aware prompting.
const syllabusKeywordThreshold = 3

// syllabusLexicon is matched case-insensitively against extracted text.
var syllabusLexicon = []string{
  "course outline",
  "learning outcomes",
  "learning objectives",
  "grading policy",
  "grading scale",
  "office hours",
  "course schedule",
  "required textbook",
  "prerequisites",
  "attendance policy",
  "academic integrity",
  "assessment",
  "midterm",
  "final exam",
}

type SyllabusClassifier interface {
  IsSyllabus(filename, text string) bool
}

type syllabusClassifier struct {
  log *logger.Logger
}

func NewSyllabusClassifier(log *logger.Logger) SyllabusClassifier {
  serviceLog := log.With("service", "SyllabusClassifier")
  return &syllabusClassifier{log: serviceLog}
}

// IsSyllabus uses two independent signals, either sufficient: the filename
// naming itself a syllabus, or enough distinct lexicon keywords in the text.
func (sc *syllabusClassifier) IsSyllabus(filename, text string) bool {
  name := strings.ToLower(filename)
  if strings.Contains(name, "syllabus") || strings.Contains(name, "outline") {
    return true
  }
  body := strings.ToLower(text)
  matches := 0
  for _, keyword := range syllabusLexicon {
    if strings.Contains(body, keyword) {
      matches++
      if matches >= syllabusKeywordThreshold {
        return true
      }
    }
  }
  return false
}
