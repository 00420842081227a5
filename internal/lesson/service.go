package lesson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmorante/repaso/internal/llm"
)

// GenerateInput holds everything needed to generate a quiz lesson.
type GenerateInput struct {
	Context      string
	NumQuestions int
	Length       ExplanationLength
}

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Service generates quiz lessons through an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Generate produces a lesson from a context text. The provider response
// is schema-validated before decoding, so a nil error means the lesson
// parses cleanly.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Lesson, error) {
	if input.NumQuestions <= 0 {
		input.NumQuestions = 5
	}
	if input.Length == "" {
		input.Length = ExplanationMedium
	}

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildQuizPrompt(input.Context, input.NumQuestions, input.Length)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate lesson: %w", err)
	}

	var l Lesson
	if err := json.Unmarshal(resp.Content, &l); err != nil {
		return nil, fmt.Errorf("decode generated lesson: %w", err)
	}
	return &l, nil
}

// Raw marshals a lesson back to the stored document form.
func Raw(l *Lesson) (map[string]any, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
