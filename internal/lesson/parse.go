package lesson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Decode parses a lesson document. Two wire forms are accepted: a bare
// JSON array of questions, or an object with optional "context" and
// "questions" arrays. Question shape is not validated beyond what the
// JSON decoder enforces.
func Decode(data []byte) (*Lesson, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse lesson: empty document")
	}

	if trimmed[0] == '[' {
		var questions []Question
		if err := json.Unmarshal(trimmed, &questions); err != nil {
			return nil, fmt.Errorf("parse lesson: %w", err)
		}
		return &Lesson{Questions: questions}, nil
	}

	var l Lesson
	if err := json.Unmarshal(trimmed, &l); err != nil {
		return nil, fmt.Errorf("parse lesson: %w", err)
	}
	return &l, nil
}

// DisplayName turns a stored filename into a human-readable title:
// "la_celula.json" becomes "La celula".
func DisplayName(filename string) string {
	name := strings.TrimSuffix(filename, ".json")
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
