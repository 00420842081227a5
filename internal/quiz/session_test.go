package quiz

import (
	"testing"

	"github.com/dmorante/repaso/internal/lesson"
)

func singleQuestionLesson() *lesson.Lesson {
	return &lesson.Lesson{
		Context: []string{"p1"},
		Questions: []lesson.Question{{
			ID:   "q1",
			Text: "pick one",
			Options: []lesson.Option{
				{Value: "a", Text: "no", Explanation: "a is wrong"},
				{Value: "b", Text: "yes", Correct: true, Explanation: "b is right"},
			},
		}},
	}
}

func TestSessionHappyPath(t *testing.T) {
	s := NewSession()
	if s.Phase != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", s.Phase)
	}

	s.SelectLesson(singleQuestionLesson())
	if s.Phase != PhaseLessonSelected {
		t.Fatalf("phase = %v after lesson select", s.Phase)
	}

	s.ChooseDifficulty(DifficultyHard)
	if s.Phase != PhaseDifficultyChosen {
		t.Fatalf("phase = %v after difficulty", s.Phase)
	}
	if QuestionTime(s.Difficulty) != 10 {
		t.Errorf("hard budget = %d, want 10", QuestionTime(s.Difficulty))
	}

	n := s.Start()
	if n != 1 || s.Phase != PhaseInProgress {
		t.Fatalf("start: n=%d phase=%v", n, s.Phase)
	}

	s.Answer("q1", "b")
	fb := s.Evaluate("q1", false)
	if fb.Kind != FeedbackCorrect {
		t.Fatalf("feedback kind = %v, want correct", fb.Kind)
	}
	if fb.Points != 10 {
		t.Errorf("points = %d, want 10", fb.Points)
	}
	if fb.Explanation != "b is right" {
		t.Errorf("explanation = %q", fb.Explanation)
	}

	if next := s.AdvanceFrom("q1"); next != nil {
		t.Errorf("AdvanceFrom returned %+v, want nil on last question", next)
	}
	if s.Phase != PhaseAwaitingSubmit {
		t.Errorf("phase = %v, want awaiting submit", s.Phase)
	}

	results := s.Submit(false)
	if s.Phase != PhaseSubmitted || s.TimeForced {
		t.Errorf("phase=%v forced=%v after submit", s.Phase, s.TimeForced)
	}
	if len(results) != 1 || !results[0].Correct || !results[0].Answered {
		t.Fatalf("results = %+v", results)
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count = %d, want 1", s.CorrectCount())
	}
	if s.Score.Points != 10 {
		t.Errorf("final points = %d, want 10", s.Score.Points)
	}
}

func TestSessionWrongAnswerExplainsSelection(t *testing.T) {
	s := NewSession()
	s.SelectLesson(singleQuestionLesson())
	s.ChooseDifficulty(DifficultyMedium)
	s.Start()

	s.Answer("q1", "a")
	fb := s.Evaluate("q1", false)
	if fb.Kind != FeedbackIncorrect {
		t.Fatalf("kind = %v, want incorrect", fb.Kind)
	}
	if fb.Explanation != "a is wrong" {
		t.Errorf("explanation = %q, want the selected option's", fb.Explanation)
	}
	if s.Score.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Score.Streak)
	}

	results := s.Submit(false)
	if results[0].Correct || !results[0].Answered {
		t.Errorf("result = %+v", results[0])
	}
	if results[0].Explanation != "a is wrong" {
		t.Errorf("result explanation = %q", results[0].Explanation)
	}
}

func TestSessionQuestionTimeout(t *testing.T) {
	s := NewSession()
	s.SelectLesson(singleQuestionLesson())
	s.ChooseDifficulty(DifficultyEasy)
	s.Start()
	s.Score.Streak = 3

	fb := s.Evaluate("q1", true)
	if fb.Kind != FeedbackTimedOut {
		t.Errorf("kind = %v, want timed out", fb.Kind)
	}
	if fb.Explanation != "" {
		t.Errorf("explanation = %q, want empty for unanswered", fb.Explanation)
	}
	if s.Score.Streak != 0 {
		t.Errorf("streak = %d, want 0 after timeout", s.Score.Streak)
	}
}

func TestSessionForcedSubmitCoversUnevaluated(t *testing.T) {
	l := &lesson.Lesson{Questions: []lesson.Question{
		{ID: "q1", Options: []lesson.Option{
			{Value: "a", Correct: true, Explanation: "right one"},
			{Value: "b"},
		}},
		{ID: "q2", Options: []lesson.Option{
			{Value: "a"},
			{Value: "b", Correct: true, Explanation: "the other right one"},
		}},
	}}

	s := NewSession()
	s.SelectLesson(l)
	s.ChooseDifficulty(DifficultyMedium)
	s.Start()

	// Only the first question gets answered before the clock runs out.
	s.Answer("q1", "a")

	results := s.Submit(true)
	if !s.TimeForced || s.Phase != PhaseSubmitted {
		t.Fatalf("forced=%v phase=%v", s.TimeForced, s.Phase)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	byID := map[string]Result{}
	for _, r := range results {
		byID[r.QuestionID] = r
	}
	if r := byID["q1"]; !r.Correct || !r.Answered || r.Explanation != "right one" {
		t.Errorf("q1 = %+v", r)
	}
	if r := byID["q2"]; r.Correct || r.Answered {
		t.Errorf("q2 = %+v", r)
	}
	// Unanswered questions explain the correct option in the summary.
	if r := byID["q2"]; r.Explanation != "the other right one" {
		t.Errorf("q2 explanation = %q", r.Explanation)
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count = %d, want 1", s.CorrectCount())
	}
}

func TestSessionRestartClearsState(t *testing.T) {
	s := NewSession()
	s.SelectLesson(singleQuestionLesson())
	s.ChooseDifficulty(DifficultyMedium)
	s.Start()
	s.Answer("q1", "b")
	s.Evaluate("q1", false)
	s.Submit(false)

	n := s.Start()
	if n != 1 || s.Phase != PhaseInProgress {
		t.Fatalf("restart: n=%d phase=%v", n, s.Phase)
	}
	if s.Score.Points != 0 || s.Score.Streak != 0 {
		t.Errorf("score carried over: %+v", s.Score)
	}
	if s.Results() != nil {
		t.Error("results carried over")
	}
	if _, ok := s.Bank.AnswerFor("q1"); ok {
		t.Error("answer carried over")
	}
	if s.TimeForced {
		t.Error("forced flag carried over")
	}
}

func TestJumpToQuestionKeepsScore(t *testing.T) {
	s := NewSession()
	s.SelectLesson(singleQuestionLesson())
	s.ChooseDifficulty(DifficultyMedium)
	s.Start()
	s.Answer("q1", "b")
	s.Evaluate("q1", false)
	s.Submit(false)

	points := s.Score.Points
	if idx := s.JumpToQuestion("q1"); idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}
	if s.Score.Points != points {
		t.Errorf("points changed on review jump: %d -> %d", points, s.Score.Points)
	}
	if idx := s.JumpToQuestion("nope"); idx != -1 {
		t.Errorf("absent id index = %d, want -1", idx)
	}
}
