package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dmorante/repaso/internal/llm"
)

const generatedLessonJSON = `{
	"context": ["La fotosíntesis convierte luz en energía química."],
	"questions": [
		{
			"id": "q1",
			"text": "¿Dónde ocurre la fotosíntesis?",
			"options": [
				{"value": "a", "text": "Cloroplastos", "correct": true, "explanation": "Correcto."},
				{"value": "b", "text": "Mitocondrias", "correct": false, "explanation": "No."}
			]
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(generatedLessonJSON)})
	svc := NewService(mock, DefaultConfig())

	l, err := svc.Generate(context.Background(), GenerateInput{
		Context:      "La fotosíntesis convierte luz en energía química.",
		NumQuestions: 1,
		Length:       ExplanationShort,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Questions) != 1 || l.Questions[0].ID != "q1" {
		t.Fatalf("lesson = %+v", l)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request missing the quiz schema")
	}
	if req.System == "" {
		t.Error("request missing the system prompt")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Número de preguntas: 1") {
		t.Errorf("user message = %+v", req.Messages)
	}
	if req.MaxTokens != 4096 {
		t.Errorf("max tokens = %d, want 4096", req.MaxTokens)
	}
}

func TestGenerateAppliesDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(generatedLessonJSON)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{Context: "algo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Número de preguntas: 5") {
		t.Error("default question count not applied")
	}
	if !strings.Contains(prompt, "Longitud de explicaciones: mediana") {
		t.Error("default explanation length not applied")
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{Context: "algo"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestRawRoundTrip(t *testing.T) {
	l := &Lesson{
		Context: []string{"p1"},
		Questions: []Question{{
			ID:      "q1",
			Text:    "texto",
			Options: []Option{{Value: "a", Text: "sí", Correct: true, Explanation: "porque sí"}},
		}},
	}

	m, err := Raw(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m["questions"].([]any); !ok {
		t.Fatalf("raw form = %+v, want questions array", m)
	}

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(b)
	if err != nil {
		t.Fatalf("decode round trip: %v", err)
	}
	if len(back.Questions) != 1 || back.Questions[0].Options[0].Explanation != "porque sí" {
		t.Fatalf("round trip lost data: %+v", back)
	}
}
