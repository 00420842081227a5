package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/dmorante/repaso/internal/quiz"
	"github.com/dmorante/repaso/internal/speech"
	"github.com/dmorante/repaso/internal/ui/components"
	"github.com/dmorante/repaso/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	case s.ended:
		msg := "\n\n\n  Repaso terminado."
		if s.saveErr != nil {
			msg += "\n\n  " + lipgloss.NewStyle().
				Foreground(theme.Error).
				Render("No se pudo guardar el progreso: "+s.saveErr.Error())
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(msg)
	}

	switch s.session.Phase {
	case qz.PhaseLessonSelected:
		return s.renderDifficulty(width)
	case qz.PhaseDifficultyChosen:
		return s.renderContext(width)
	case qz.PhaseInProgress:
		if s.showingFeedback {
			return s.renderFeedback(width)
		}
		return s.renderQuestion(width)
	}
	return ""
}

func (s *QuizScreen) renderDifficulty(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Elige la dificultad"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.diffMenu.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Tiempo total del repaso: %s", qz.FormatClock(qz.GlobalTimeBudget))))
	return b.String()
}

func (s *QuizScreen) renderContext(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Lee con atención"))
	b.WriteString("\n\n")

	textWidth := min(width-8, 72)
	paraStyle := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text)
	for _, p := range s.lesson.Context {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, paraStyle.Render(p)))
		b.WriteString("\n\n")
	}

	if s.synth != nil {
		var status string
		switch s.reader.State() {
		case speech.StateReading:
			index, total := s.reader.Progress()
			status = fmt.Sprintf("▶ Leyendo %d/%d", index+1, total)
		case speech.StatePaused:
			status = "⏸ Pausado"
		default:
			status = "Pulsa R para escuchar el texto"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(status))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pulsa Enter para comenzar"))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.current
	if q == nil {
		return ""
	}
	score := s.session.Score

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Pregunta %d/%d", score.Position, score.Total))

	streakStr := ""
	if m := score.Multiplier(); m > 1 {
		streakStr = fmt.Sprintf("  Racha x%d", m)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("★ %d pts%s  ⏱ %s",
			score.Points, streakStr, qz.FormatClock(s.question.Remaining())))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt.Text)
		if i == s.selected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	b.WriteString("\n")

	bar := components.NewProgressBar("", score.ProgressFraction(), false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	fb := s.feedback
	if fb == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	switch fb.Kind {
	case qz.FeedbackCorrect:
		headline := fmt.Sprintf("¡Correcto! +%d puntos", fb.Points)
		if fb.Multiplier > 1 {
			headline += fmt.Sprintf(" (Racha x%d)", fb.Multiplier)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(headline))
	case qz.FeedbackTimedOut:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("¡Tiempo agotado!"))
	case qz.FeedbackUnanswered:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Sin respuesta"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Incorrecto"))
		if s.current != nil {
			if opt := s.current.CorrectOption(); opt != nil {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Render(fmt.Sprintf("Respuesta correcta: %s", opt.Text)))
			}
		}
	}
	b.WriteString("\n\n")

	if fb.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(fb.Explanation)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pulsa cualquier tecla para continuar..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("¿Abandonar el repaso?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Los puntos de esta ronda se perderán."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[S] Sí, abandonar"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, seguir jugando"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Pulsa cualquier tecla para volver.", errMsg))
}
