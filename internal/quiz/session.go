package quiz

import (
	"github.com/google/uuid"

	"github.com/dmorante/repaso/internal/lesson"
)

// GlobalTimeBudget is the fixed whole-session budget in seconds.
const GlobalTimeBudget = 600

// Difficulty selects the per-question time budget.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionTime returns the per-question budget in seconds for a tier.
// Unknown tiers fall back to medium.
func QuestionTime(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 30
	case DifficultyHard:
		return 10
	default:
		return 20
	}
}

// Phase is the session controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLessonSelected
	PhaseDifficultyChosen
	PhaseInProgress
	PhaseAwaitingSubmit
	PhaseSubmitted
)

// FeedbackKind distinguishes the inline wording after each question.
type FeedbackKind int

const (
	FeedbackCorrect FeedbackKind = iota
	FeedbackIncorrect
	FeedbackUnanswered
	FeedbackTimedOut
)

// Feedback is the inline result of evaluating one question mid-session.
type Feedback struct {
	Kind        FeedbackKind
	Points      int // awarded by this question, correct answers only
	Multiplier  int // streak multiplier at award time, for "Racha xN"
	Explanation string
}

// Result is one question's outcome in the final summary. Correctness is
// recomputed independently at submit time, so questions that were never
// evaluated mid-session (global timer expiry) are still covered.
type Result struct {
	QuestionID  string
	Index       int // 0-based position in the session ordering
	Correct     bool
	Answered    bool
	Explanation string
}

// Session orchestrates one run-through of a lesson: bank, score, and
// phase transitions. Timers live in the screen's tick loop and call
// back into Evaluate/Submit. A Session is owned by a single screen and
// is never shared.
type Session struct {
	ID         string
	Lesson     *lesson.Lesson
	Bank       *Bank
	Score      *Score
	Difficulty Difficulty
	Phase      Phase

	// TimeForced is set when Submit was triggered by the global timer.
	TimeForced bool

	results []Result
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{
		ID:         uuid.New().String(),
		Bank:       NewBank(),
		Score:      NewScore(0),
		Difficulty: DifficultyMedium,
		Phase:      PhaseIdle,
	}
}

// SelectLesson loads a parsed lesson into the bank. A failed fetch or
// parse never reaches this point, so the phase only ever moves forward
// on success.
func (s *Session) SelectLesson(l *lesson.Lesson) {
	s.Lesson = l
	s.Bank.Load(l.Questions)
	s.Phase = PhaseLessonSelected
}

// ChooseDifficulty picks the per-question time tier and enables start.
func (s *Session) ChooseDifficulty(d Difficulty) {
	s.Difficulty = d
	s.Phase = PhaseDifficultyChosen
}

// Start shuffles a fresh session ordering, resets the score, and moves
// to InProgress. Returns the question count.
func (s *Session) Start() int {
	n := s.Bank.PrepareSession()
	s.Score = NewScore(n)
	s.Score.Reset()
	s.TimeForced = false
	s.results = nil
	s.Phase = PhaseInProgress
	return n
}

// Answer records the user's selection for a question.
func (s *Session) Answer(id, value string) {
	s.Bank.RecordAnswer(id, value)
}

// Evaluate scores one question when it is left: on selection, on
// question-timer expiry (timedOut), or on skip. Unanswered questions
// reset the streak and show no explanation.
func (s *Session) Evaluate(id string, timedOut bool) Feedback {
	q := s.Bank.QuestionAt(id)
	selected, answered := s.Bank.AnswerFor(id)

	if answered && selected != "" {
		if selected == s.Bank.CorrectAnswerFor(id) {
			award := s.Score.RecordCorrect()
			fb := Feedback{Kind: FeedbackCorrect, Points: award, Multiplier: s.Score.Multiplier()}
			if q != nil {
				fb.Explanation = q.ExplanationFor(selected)
			}
			return fb
		}
		s.Score.RecordIncorrect()
		fb := Feedback{Kind: FeedbackIncorrect}
		if q != nil {
			fb.Explanation = q.ExplanationFor(selected)
		}
		return fb
	}

	s.Score.RecordIncorrect()
	if timedOut {
		return Feedback{Kind: FeedbackTimedOut}
	}
	return Feedback{Kind: FeedbackUnanswered}
}

// AdvanceFrom moves past the question at the given id. It returns the
// next question, or nil when that was the last one, in which case the
// session is submit-ready.
func (s *Session) AdvanceFrom(id string) *lesson.Question {
	index := s.Bank.IndexOf(id)
	if index < 0 {
		return nil
	}
	if index < s.Bank.Len()-1 {
		s.Score.JumpTo(index + 2)
		return &s.Bank.Questions()[index+1]
	}
	s.Score.JumpTo(s.Bank.Len())
	s.Phase = PhaseAwaitingSubmit
	return nil
}

// Submit closes the session and recomputes every question's result
// independently of mid-session evaluation. forced marks a global-timer
// expiry. Submitting is valid from InProgress too: the user may let the
// clock run out on the first question.
func (s *Session) Submit(forced bool) []Result {
	s.TimeForced = forced
	s.Phase = PhaseSubmitted

	results := make([]Result, 0, s.Bank.Len())
	for i, q := range s.Bank.Questions() {
		selected, answered := s.Bank.AnswerFor(q.ID)
		answered = answered && selected != ""
		correct := answered && selected == s.Bank.CorrectAnswerFor(q.ID)

		r := Result{QuestionID: q.ID, Index: i, Correct: correct, Answered: answered}
		if answered {
			r.Explanation = q.ExplanationFor(selected)
		} else if opt := q.CorrectOption(); opt != nil {
			r.Explanation = opt.Explanation
		}
		results = append(results, r)
	}
	s.results = results
	return results
}

// Results returns the submitted results, nil before Submit.
func (s *Session) Results() []Result {
	return s.results
}

// CorrectCount counts correct results after submit.
func (s *Session) CorrectCount() int {
	n := 0
	for _, r := range s.results {
		if r.Correct {
			n++
		}
	}
	return n
}

// JumpToQuestion is the Submitted-phase review navigation: it moves the
// visible position without touching the score.
func (s *Session) JumpToQuestion(id string) int {
	index := s.Bank.IndexOf(id)
	if index < 0 {
		return -1
	}
	s.Score.JumpTo(index + 1)
	return index
}
