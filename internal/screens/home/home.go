package home

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmorante/repaso/internal/lesson"
	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/screen"
	"github.com/dmorante/repaso/internal/screens/history"
	quizscreen "github.com/dmorante/repaso/internal/screens/quiz"
	"github.com/dmorante/repaso/internal/speech"
	"github.com/dmorante/repaso/internal/store"
	"github.com/dmorante/repaso/internal/ui/components"
	"github.com/dmorante/repaso/internal/ui/layout"
	"github.com/dmorante/repaso/internal/ui/theme"
)

// lessonsLoadedMsg is sent when the lesson library has been read.
type lessonsLoadedMsg struct {
	lessons []*store.LessonRecord
	err     error
}

// lessonDeletedMsg is sent when a delete completes.
type lessonDeletedMsg struct {
	id  int64
	err error
}

// HomeScreen is the lesson library: a searchable list of saved lessons
// from which a run is started. Typing filters; Enter plays the
// highlighted lesson.
type HomeScreen struct {
	store *store.Store
	synth speech.Synthesizer

	search   components.TextInput
	lessons  []*store.LessonRecord
	filtered []int
	selected int

	loading       bool
	confirmDelete bool
	errMsg        string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscapeInterceptor = (*HomeScreen)(nil)

// New creates the home screen. The synthesizer may be nil when no
// audio player is available.
func New(st *store.Store, synth speech.Synthesizer) *HomeScreen {
	return &HomeScreen{
		store:   st,
		synth:   synth,
		search:  components.NewTextInput("buscar...", false, 40),
		loading: true,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.search.Init(), h.loadCmd())
}

func (h *HomeScreen) loadCmd() tea.Cmd {
	st := h.store
	return func() tea.Msg {
		lessons, err := st.Lessons().All(context.Background())
		return lessonsLoadedMsg{lessons: lessons, err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Lecciones"
}

func (h *HomeScreen) InterceptEscape() bool {
	return h.confirmDelete
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmDelete {
		return []layout.KeyHint{
			{Key: "S", Description: "Borrar"},
			{Key: "N", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "Enter", Description: "Jugar"},
		{Key: "Ctrl+R", Description: "Lección al azar"},
		{Key: "Ctrl+D", Description: "Borrar"},
		{Key: "Ctrl+H", Description: "Historial"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		h.loading = false
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.lessons = msg.lessons
		h.refilter()
		return h, nil

	case lessonDeletedMsg:
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		kept := h.lessons[:0]
		for _, rec := range h.lessons {
			if rec.ID != msg.id {
				kept = append(kept, rec)
			}
		}
		h.lessons = kept
		h.refilter()
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.confirmDelete {
		switch msg.String() {
		case "s", "y":
			h.confirmDelete = false
			return h, h.deleteCmd()
		case "n", "esc":
			h.confirmDelete = false
		}
		return h, nil
	}

	switch msg.String() {
	case "up":
		if h.selected > 0 {
			h.selected--
		}
		return h, nil
	case "down":
		if h.selected < len(h.filtered)-1 {
			h.selected++
		}
		return h, nil
	case "enter":
		if rec := h.current(); rec != nil {
			return h, playCmd(rec, h.store, h.synth)
		}
		return h, nil
	case "ctrl+r":
		if len(h.filtered) == 0 {
			return h, nil
		}
		rec := h.lessons[h.filtered[rand.IntN(len(h.filtered))]]
		return h, playCmd(rec, h.store, h.synth)
	case "ctrl+d":
		if h.current() != nil {
			h.confirmDelete = true
		}
		return h, nil
	case "ctrl+h":
		st := h.store
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(st)}
		}
	}

	// Everything else feeds the search box.
	var cmd tea.Cmd
	before := h.search.Value()
	h.search, cmd = h.search.Update(msg)
	if h.search.Value() != before {
		h.refilter()
	}
	return h, cmd
}

// current returns the highlighted lesson record, nil when the filtered
// list is empty.
func (h *HomeScreen) current() *store.LessonRecord {
	if h.selected < 0 || h.selected >= len(h.filtered) {
		return nil
	}
	return h.lessons[h.filtered[h.selected]]
}

// refilter recomputes the visible subset for the search term.
func (h *HomeScreen) refilter() {
	term := strings.ToLower(strings.TrimSpace(h.search.Value()))
	h.filtered = h.filtered[:0]
	for i, rec := range h.lessons {
		if term == "" || strings.Contains(strings.ToLower(lesson.DisplayName(rec.Filename)), term) {
			h.filtered = append(h.filtered, i)
		}
	}
	if h.selected >= len(h.filtered) {
		h.selected = len(h.filtered) - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
}

func (h *HomeScreen) deleteCmd() tea.Cmd {
	rec := h.current()
	if rec == nil {
		return nil
	}
	st := h.store
	id := rec.ID
	return func() tea.Msg {
		err := st.Lessons().Delete(context.Background(), id)
		return lessonDeletedMsg{id: id, err: err}
	}
}

// playCmd decodes a stored lesson and pushes the quiz screen for it.
func playCmd(rec *store.LessonRecord, st *store.Store, synth speech.Synthesizer) tea.Cmd {
	return func() tea.Msg {
		raw, err := json.Marshal(rec.Data)
		if err != nil {
			return lessonsLoadedMsg{err: fmt.Errorf("codificar lección %q: %w", rec.Filename, err)}
		}
		lsn, err := lesson.Decode(raw)
		if err != nil {
			return lessonsLoadedMsg{err: fmt.Errorf("leer lección %q: %w", rec.Filename, err)}
		}
		return router.PushScreenMsg{Screen: quizscreen.New(lsn, rec.Filename, st, synth)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("R E P A S O"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Repasa tus lecciones contra el reloj"))

	sections = append(sections, components.ArcadeCard("Buscar: "+h.search.View(), cw))

	switch {
	case h.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Error: "+h.errMsg))
	case h.loading:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Cargando lecciones..."))
	case len(h.lessons) == 0:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No hay lecciones guardadas.\nImporta o genera una con el comando repaso."))
	case len(h.filtered) == 0:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Ninguna lección coincide con la búsqueda."))
	default:
		sections = append(sections, h.renderList(cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) renderList(cw int) string {
	var b strings.Builder
	for i, idx := range h.filtered {
		rec := h.lessons[idx]
		name := lesson.DisplayName(rec.Filename)

		count := ""
		if qs, ok := rec.Data["questions"].([]any); ok {
			count = fmt.Sprintf("  (%d preguntas)", len(qs))
		}

		line := name + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
		if i == h.selected {
			if h.confirmDelete {
				line = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
					Render("▸ ¿Borrar \"" + name + "\"? [S/N]")
			} else {
				line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
					Render("▸ "+name) + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
			}
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
