package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dmorante/repaso/internal/lesson"
	qz "github.com/dmorante/repaso/internal/quiz"
	"github.com/dmorante/repaso/internal/router"
	"github.com/dmorante/repaso/internal/screen"
	"github.com/dmorante/repaso/internal/screens/review"
	"github.com/dmorante/repaso/internal/speech"
	"github.com/dmorante/repaso/internal/store"
	"github.com/dmorante/repaso/internal/ui/components"
	"github.com/dmorante/repaso/internal/ui/layout"
)

// QuizScreen runs one lesson from difficulty choice through the final
// submit. The store and synthesizer are optional: without a store the
// run leaves no progress record, without a synthesizer the read-aloud
// keys do nothing.
type QuizScreen struct {
	session *qz.Session
	lesson  *lesson.Lesson
	name    string
	store   *store.Store
	synth   speech.Synthesizer
	reader  *speech.Reader

	// speechCancel stops the chunk currently playing; Cancel on the
	// reader alone only prevents the next one from starting.
	speechCancel context.CancelFunc

	global    *qz.Countdown
	question  *qz.Countdown
	globalGen int
	qGen      int

	diffMenu components.Menu

	current  *lesson.Question
	selected int
	feedback *qz.Feedback

	showingFeedback    bool
	showingQuitConfirm bool
	speaking           bool
	ended              bool
	errMsg             string
	saveErr            error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.HeaderStatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeInterceptor = (*QuizScreen)(nil)

// New creates a quiz screen for an already parsed lesson. name labels
// the lesson in progress records (usually its filename).
func New(lsn *lesson.Lesson, name string, st *store.Store, synth speech.Synthesizer) *QuizScreen {
	s := &QuizScreen{
		session:  qz.NewSession(),
		lesson:   lsn,
		name:     name,
		store:    st,
		synth:    synth,
		reader:   speech.NewReader(),
		global:   &qz.Countdown{},
		question: &qz.Countdown{},
	}
	s.session.SelectLesson(lsn)

	s.diffMenu = components.NewMenu([]components.MenuItem{
		{Label: "Fácil      (30 s por pregunta)", Action: pickDifficulty(qz.DifficultyEasy)},
		{Label: "Medio      (20 s por pregunta)", Action: pickDifficulty(qz.DifficultyMedium)},
		{Label: "Difícil    (10 s por pregunta)", Action: pickDifficulty(qz.DifficultyHard)},
	})
	return s
}

func pickDifficulty(d qz.Difficulty) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return difficultyPickedMsg(d) }
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return lesson.DisplayName(s.name)
}

// HeaderStatus feeds the header's points and global clock segments.
func (s *QuizScreen) HeaderStatus() (int, string) {
	points := s.session.Score.Points
	if s.session.Phase == qz.PhaseInProgress {
		return points, qz.FormatClock(s.global.Remaining())
	}
	return points, ""
}

// InterceptEscape keeps Esc inside the screen while a run is active so
// it can show the quit confirmation instead of popping outright.
func (s *QuizScreen) InterceptEscape() bool {
	return s.session.Phase == qz.PhaseInProgress && !s.ended
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "" || s.ended:
		return []layout.KeyHint{{Key: "Cualquier tecla", Description: "Volver"}}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "S", Description: "Abandonar"},
			{Key: "N", Description: "Seguir"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "Cualquier tecla", Description: "Continuar"}}
	case s.session.Phase == qz.PhaseInProgress:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Responder"},
			{Key: "↑↓", Description: "Mover"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Esc", Description: "Abandonar"},
		}
	case s.session.Phase == qz.PhaseDifficultyChosen:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Comenzar"}}
		if s.synth != nil {
			hints = append(hints,
				layout.KeyHint{Key: "R", Description: "Leer en voz alta"},
				layout.KeyHint{Key: "P", Description: "Pausar"},
			)
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Volver"})
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Mover"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyPickedMsg:
		s.session.ChooseDifficulty(qz.Difficulty(msg))
		if len(s.lesson.Context) == 0 {
			return s, s.startRun()
		}
		return s, nil

	case timerTickMsg:
		return s.handleTick()

	case speechDoneMsg:
		return s.handleSpeechDone(msg)

	case review.SaveResultMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// tickCmd schedules the next one-second tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.session.Phase != qz.PhaseInProgress {
		return s, nil
	}

	if _, expired, ok := s.global.Tick(s.globalGen); ok && expired {
		return s, s.finish(true)
	}

	if !s.showingFeedback && s.current != nil {
		if _, expired, ok := s.question.Tick(s.qGen); ok && expired {
			fb := s.session.Evaluate(s.current.ID, true)
			s.feedback = &fb
			s.showingFeedback = true
		}
	}

	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.ended {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "s", "y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch s.session.Phase {
	case qz.PhaseLessonSelected:
		var cmd tea.Cmd
		switch key {
		case "1":
			return s, pickDifficulty(qz.DifficultyEasy)()
		case "2":
			return s, pickDifficulty(qz.DifficultyMedium)()
		case "3":
			return s, pickDifficulty(qz.DifficultyHard)()
		}
		s.diffMenu, cmd = s.diffMenu.Update(msg)
		return s, cmd

	case qz.PhaseDifficultyChosen:
		return s.handleContextKey(key)

	case qz.PhaseInProgress:
		if s.showingFeedback {
			return s.advance()
		}
		return s.handleQuestionKey(key)
	}

	return s, nil
}

// handleContextKey drives the pre-run reading view.
func (s *QuizScreen) handleContextKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		return s, s.startRun()
	case "r":
		if s.synth == nil {
			return s, nil
		}
		if s.reader.State() != speech.StateIdle {
			s.stopSpeech()
			return s, nil
		}
		chunk, gen, ok := s.reader.Start(s.lesson.Context)
		if !ok {
			return s, nil
		}
		return s, s.speakCmd(chunk, gen)
	case "p":
		if s.synth == nil {
			return s, nil
		}
		state := s.reader.Toggle()
		if state == speech.StateReading && !s.speaking {
			if chunk, gen, ok := s.reader.Resume(); ok {
				return s, s.speakCmd(chunk, gen)
			}
		}
		return s, nil
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionKey(key string) (screen.Screen, tea.Cmd) {
	if s.current == nil {
		return s, nil
	}
	n := len(s.current.Options)

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < n-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		return s.choose(s.selected)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < n {
			return s.choose(idx)
		}
	}
	return s, nil
}

// choose records the highlighted option and shows inline feedback.
func (s *QuizScreen) choose(idx int) (screen.Screen, tea.Cmd) {
	s.selected = idx
	s.question.Stop()
	s.session.Answer(s.current.ID, s.current.Options[idx].Value)
	fb := s.session.Evaluate(s.current.ID, false)
	s.feedback = &fb
	s.showingFeedback = true
	return s, nil
}

// advance moves past the question whose feedback is showing.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.feedback = nil
	s.showingFeedback = false

	next := s.session.AdvanceFrom(s.current.ID)
	if next == nil {
		return s, s.finish(false)
	}
	s.current = next
	s.selected = 0
	s.qGen = s.question.Start(qz.QuestionTime(s.session.Difficulty))
	return s, nil
}

// stopSpeech cancels the reading sequence and kills the chunk that is
// already playing.
func (s *QuizScreen) stopSpeech() {
	s.reader.Cancel()
	if s.speechCancel != nil {
		s.speechCancel()
		s.speechCancel = nil
	}
}

// startRun shuffles the session and arms both countdowns.
func (s *QuizScreen) startRun() tea.Cmd {
	s.stopSpeech()

	n := s.session.Start()
	if n == 0 {
		s.errMsg = "La lección no tiene preguntas."
		return nil
	}
	s.current = &s.session.Bank.Questions()[0]
	s.selected = 0
	s.globalGen = s.global.Start(qz.GlobalTimeBudget)
	s.qGen = s.question.Start(qz.QuestionTime(s.session.Difficulty))
	return tickCmd()
}

// finish submits the run, persists a progress record when a store is
// attached, and pushes the review screen.
func (s *QuizScreen) finish(forced bool) tea.Cmd {
	s.global.Stop()
	s.question.Stop()
	s.showingFeedback = false
	s.feedback = nil
	s.session.Submit(forced)
	s.ended = true

	push := func() tea.Msg {
		return router.PushScreenMsg{Screen: review.New(s.session, s.name)}
	}
	if s.store == nil {
		return push
	}
	return tea.Batch(s.saveProgressCmd(), push)
}

func (s *QuizScreen) saveProgressCmd() tea.Cmd {
	record := &store.ProgressRecord{
		Data: map[string]any{
			"session_id": s.session.ID,
			"lesson":     s.name,
			"difficulty": string(s.session.Difficulty),
			"points":     s.session.Score.Points,
			"correct":    s.session.CorrectCount(),
			"total":      s.session.Bank.Len(),
			"forced":     s.session.TimeForced,
		},
	}
	st := s.store
	return func() tea.Msg {
		_, err := st.Progress().Append(context.Background(), record)
		return review.SaveResultMsg{Err: err}
	}
}

// speakCmd plays one chunk in the background and reports completion.
// Each chunk gets its own cancelable context so stopSpeech can cut
// playback mid-chunk.
func (s *QuizScreen) speakCmd(chunk string, generation int) tea.Cmd {
	s.speaking = true
	if s.speechCancel != nil {
		s.speechCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.speechCancel = cancel
	synth := s.synth
	return func() tea.Msg {
		err := synth.Speak(ctx, chunk)
		return speechDoneMsg{generation: generation, err: err}
	}
}

func (s *QuizScreen) handleSpeechDone(msg speechDoneMsg) (screen.Screen, tea.Cmd) {
	s.speaking = false
	if msg.err != nil {
		s.stopSpeech()
		return s, nil
	}

	next, ok := s.reader.Advance(msg.generation)
	if !ok {
		return s, nil
	}
	if s.reader.Paused() {
		// Resume picks this chunk up on the next toggle.
		return s, nil
	}
	return s, s.speakCmd(next, msg.generation)
}
