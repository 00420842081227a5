package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/screen"
	"github.com/dmorante/repaso/internal/screens/home"
	"github.com/dmorante/repaso/internal/speech"
	"github.com/dmorante/repaso/internal/store"
	"github.com/dmorante/repaso/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store, synth speech.Synthesizer) AppModel {
	return AppModel{
		router: router.New(home.New(st, synth)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		// Popping the only screen ends the program (one-off runs).
		if m.router.Depth() <= 1 {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens mid-dialog keep Esc for themselves.
			if ei, ok := m.router.Active().(screen.EscapeInterceptor); ok && ei.InterceptEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points := 0
	clock := ""
	if hs, ok := active.(screen.HeaderStatusProvider); ok {
		points, clock = hs.HeaderStatus()
	}
	header := layout.RenderHeader(title, points, clock, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Mover"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an open store. The
// synthesizer may be nil.
func Run(st *store.Store, synth speech.Synthesizer) error {
	p := tea.NewProgram(newAppModel(st, synth))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// RunLesson starts the program directly on a quiz screen, used by the
// play command for one-off runs.
func RunLesson(initial screen.Screen) error {
	m := AppModel{router: router.New(initial)}
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
