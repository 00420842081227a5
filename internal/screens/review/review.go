package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmorante/repaso/internal/lesson"
	qz "github.com/dmorante/repaso/internal/quiz"
	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/screen"
	"github.com/dmorante/repaso/internal/ui/layout"
	"github.com/dmorante/repaso/internal/ui/theme"
)

// SaveResultMsg reports whether the run's progress record was written.
// The quiz screen emits it once its background save finishes; by then
// this screen is usually the active one.
type SaveResultMsg struct {
	Err error
}

// ReviewScreen shows the final score and lets the user walk the
// questions again with their explanations. It reads a submitted
// session; navigation goes through JumpToQuestion so the header
// position tracks the question being inspected.
type ReviewScreen struct {
	session *qz.Session
	name    string

	selected int
	detail   bool
	saveErr  error
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.HeaderStatusProvider = (*ReviewScreen)(nil)
var _ screen.EscapeInterceptor = (*ReviewScreen)(nil)

// New creates a review screen over a submitted session.
func New(session *qz.Session, name string) *ReviewScreen {
	return &ReviewScreen{session: session, name: name}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Resultados"
}

func (r *ReviewScreen) HeaderStatus() (int, string) {
	return r.session.Score.Points, ""
}

// InterceptEscape keeps Esc local while a question detail is open so it
// returns to the list instead of leaving the screen.
func (r *ReviewScreen) InterceptEscape() bool {
	return r.detail
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	if r.detail {
		return []layout.KeyHint{
			{Key: "←→", Description: "Pregunta anterior/siguiente"},
			{Key: "Esc", Description: "Resumen"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "Enter", Description: "Ver explicación"},
		{Key: "Q", Description: "Salir"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(SaveResultMsg); ok {
		r.saveErr = m.Err
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	results := r.session.Results()
	n := len(results)

	if r.detail {
		switch kmsg.String() {
		case "esc", "enter":
			r.detail = false
		case "left", "h":
			if r.selected > 0 {
				r.selected--
				r.jump()
			}
		case "right", "l":
			if r.selected < n-1 {
				r.selected++
				r.jump()
			}
		}
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
		}
	case "down", "j":
		if r.selected < n-1 {
			r.selected++
		}
	case "enter":
		if n > 0 {
			r.detail = true
			r.jump()
		}
	case "q", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ReviewScreen) jump() {
	results := r.session.Results()
	if r.selected >= 0 && r.selected < len(results) {
		r.session.JumpToQuestion(results[r.selected].QuestionID)
	}
}

func (r *ReviewScreen) View(width, height int) string {
	if r.detail {
		return r.renderDetail(width)
	}
	return r.renderSummary(width)
}

func (r *ReviewScreen) renderSummary(width int) string {
	sess := r.session
	results := sess.Results()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("¡Repaso terminado!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(lesson.DisplayName(r.name)))
	b.WriteString("\n\n")

	if sess.TimeForced {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Se agotó el tiempo total."))
		b.WriteString("\n\n")
	}

	if r.saveErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No se pudo guardar el progreso: " + r.saveErr.Error()))
		b.WriteString("\n\n")
	}

	scoreLine := fmt.Sprintf("%d / %d correctas  (Total: %d puntos)",
		sess.CorrectCount(), len(results), sess.Score.Points)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	questions := sess.Bank.Questions()
	for i, res := range results {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if res.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		text := ""
		if res.Index < len(questions) {
			text = truncate(questions[res.Index].Text, min(width-16, 56))
		}
		line := fmt.Sprintf("%s  %2d. %s", mark, i+1, text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == r.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *ReviewScreen) renderDetail(width int) string {
	results := r.session.Results()
	if r.selected < 0 || r.selected >= len(results) {
		return ""
	}
	res := results[r.selected]
	questions := r.session.Bank.Questions()
	if res.Index >= len(questions) {
		return ""
	}
	q := questions[res.Index]
	selectedValue, _ := r.session.Bank.AnswerFor(q.ID)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Pregunta %d de %d", r.selected+1, len(results))))
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
		line := fmt.Sprintf("  %d) %s", i+1, opt.Text)
		switch {
		case opt.Correct:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line + "  ✓"))
		case opt.Value == selectedValue:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line + "  ✗"))
		default:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	b.WriteString("\n")

	if !res.Answered {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No respondida"))
		b.WriteString("\n\n")
	}

	if res.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(res.Explanation)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, w int) string {
	if w <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-3]) + "..."
}
