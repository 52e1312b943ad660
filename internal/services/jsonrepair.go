package services

import (
  "encoding/json"
  "fmt"
  "regexp"
  "strings"
)

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// repairAndParse recovers a JSON object from malformed model output. The
// fallback order is a contract: direct parse, then comment and trailing-comma
// cleanup, then extraction of the outermost object span (raw and cleaned).
func repairAndParse(text string) (map[string]any, error) {
  candidate := strings.TrimSpace(text)
  candidate = stripCodeFences(candidate)

  if obj, err := parseObject(candidate); err == nil {
    return obj, nil
  }

  cleaned := removeTrailingCommas(stripJSONComments(candidate))
  if obj, err := parseObject(cleaned); err == nil {
    return obj, nil
  }

  if span := outermostObject(candidate); span != "" {
    if obj, err := parseObject(span); err == nil {
      return obj, nil
    }
  }
  if span := outermostObject(cleaned); span != "" {
    if obj, err := parseObject(span); err == nil {
      return obj, nil
    }
  }

  return nil, fmt.Errorf("unrecoverable model output")
}

func parseObject(s string) (map[string]any, error) {
  var obj map[string]any
  if err := json.Unmarshal([]byte(s), &obj); err != nil {
    return nil, err
  }
  return obj, nil
}

// stripCodeFences unwraps ```json ... ``` blocks models often emit.
func stripCodeFences(s string) string {
  trimmed := strings.TrimSpace(s)
  if !strings.HasPrefix(trimmed, "```") {
    return trimmed
  }
  trimmed = strings.TrimPrefix(trimmed, "```json")
  trimmed = strings.TrimPrefix(trimmed, "```")
  if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
    trimmed = trimmed[:idx]
  }
  return strings.TrimSpace(trimmed)
}

// stripJSONComments removes // line comments and /* */ block comments while
// leaving string literals untouched.
func stripJSONComments(s string) string {
  var out strings.Builder
  out.Grow(len(s))
  inString := false
  escaped := false
  for i := 0; i < len(s); i++ {
    ch := s[i]
    if inString {
      out.WriteByte(ch)
      if escaped {
        escaped = false
      } else if ch == '\\' {
        escaped = true
      } else if ch == '"' {
        inString = false
      }
      continue
    }
    switch {
    case ch == '"':
      inString = true
      out.WriteByte(ch)
    case ch == '/' && i+1 < len(s) && s[i+1] == '/':
      for i < len(s) && s[i] != '\n' {
        i++
      }
      if i < len(s) {
        out.WriteByte('\n')
      }
    case ch == '/' && i+1 < len(s) && s[i+1] == '*':
      i += 2
      for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
        i++
      }
      i++ // skip the closing '/'
    default:
      out.WriteByte(ch)
    }
  }
  return out.String()
}

func removeTrailingCommas(s string) string {
  return trailingCommaRe.ReplaceAllString(s, "$1")
}

// outermostObject returns the span from the first '{' to the last '}', or ""
// when no object-like span exists.
func outermostObject(s string) string {
  start := strings.Index(s, "{")
  end := strings.LastIndex(s, "}")
  if start < 0 || end <= start {
    return ""
  }
  return s[start : end+1]
}
