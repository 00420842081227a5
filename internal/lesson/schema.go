package lesson

import "github.com/dmorante/repaso/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation. It mirrors
// the object wire form accepted by Decode.
var QuizSchema = &llm.Schema{
	Name:        "quiz-lesson",
	Description: "A quiz lesson with context paragraphs and multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"context": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The context paragraphs the questions are based on",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Identifier unique within the lesson",
						},
						"text": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"value":       map[string]any{"type": "string"},
									"text":        map[string]any{"type": "string"},
									"correct":     map[string]any{"type": "boolean"},
									"explanation": map[string]any{"type": "string"},
								},
								"required":             []any{"value", "text", "correct", "explanation"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"id", "text", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"context", "questions"},
		"additionalProperties": false,
	},
}
