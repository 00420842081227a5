package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmorante/repaso/internal/lesson"
	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/screen"
	"github.com/dmorante/repaso/internal/store"
	"github.com/dmorante/repaso/internal/ui/layout"
	"github.com/dmorante/repaso/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []*store.ProgressRecord
	Err     error
}

// HistoryScreen lists past quiz runs from the progress records, newest
// first.
type HistoryScreen struct {
	store    *store.Store
	records  []*store.ProgressRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{store: st}
}

func (s *HistoryScreen) Init() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		records, err := st.Progress().All(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Storage order is oldest first; show newest on top.
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
		return historyLoadedMsg{Records: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando historial...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Todavía no hay repasos. ¡A jugar!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		name, _ := rec.Data["lesson"].(string)
		difficulty, _ := rec.Data["difficulty"].(string)
		points := intField(rec.Data, "points")
		correct := intField(rec.Data, "correct")
		total := intField(rec.Data, "total")

		forcedStr := ""
		if forced, _ := rec.Data["forced"].(bool); forced {
			forcedStr = "  (tiempo agotado)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-24s  %d/%d  %d pts  %s%s",
			prefix,
			rec.CreatedAt.Local().Format("02 Jan 2006 15:04"),
			truncate(lesson.DisplayName(name), 24),
			correct, total, points, difficulty, forcedStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// intField reads a numeric JSON field that may round-trip as float64.
func intField(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func truncate(s string, w int) string {
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-3]) + "..."
}
