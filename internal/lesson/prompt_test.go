package lesson

import (
	"strings"
	"testing"
)

func TestBuildQuizPrompt(t *testing.T) {
	prompt := BuildQuizPrompt("El ciclo del agua tiene tres fases.", 7, ExplanationLong)

	for _, want := range []string{
		"El ciclo del agua tiene tres fases.",
		"Número de preguntas: 7",
		"Longitud de explicaciones: larga",
		`"questions"`,
		"Solo una opción correcta por pregunta",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildQuizPromptLengths(t *testing.T) {
	tests := []struct {
		length ExplanationLength
		want   string
	}{
		{ExplanationShort, "Longitud de explicaciones: corta"},
		{ExplanationMedium, "Longitud de explicaciones: mediana"},
		{ExplanationLong, "Longitud de explicaciones: larga"},
	}

	for _, tt := range tests {
		prompt := BuildQuizPrompt("contexto", 5, tt.length)
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("length %s: prompt missing %q", tt.length, tt.want)
		}
	}
}
