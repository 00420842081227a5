package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors the shape of one generated quiz question.
func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "One multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"points":     map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"facil", "medio", "dificil"}},
			},
			"required": []any{"question", "points"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"question":"¿Capital de España?","points":10,"difficulty":"facil"}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"¿Río más largo?","points":20}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"¿Capital de Francia?"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"¿Capital de Italia?","points":"diez"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"question":"¿Capital de Portugal?","points":10,"difficulty":"imposible"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedLesson(t *testing.T) {
	schema := &Schema{
		Name:        "quiz-lesson",
		Description: "A lesson with nested questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"context": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"context", "options"},
		},
	}

	valid := json.RawMessage(`{"context":{"title":"Los ríos"},"options":["El Tajo","El Ebro","El Duero"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"context":{"title":"Los ríos"},"options":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
