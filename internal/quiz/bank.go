package quiz

import (
	"math/rand/v2"

	"github.com/dmorante/repaso/internal/lesson"
)

// Bank holds a lesson's question set and the per-session shuffled view
// of it. A session's ordering is fixed at PrepareSession and never
// restored to the original.
type Bank struct {
	questions  []lesson.Question
	shuffled   []lesson.Question
	answers    map[string]string
	selections map[string]string
}

// NewBank creates an empty question bank.
func NewBank() *Bank {
	return &Bank{
		answers:    make(map[string]string),
		selections: make(map[string]string),
	}
}

// Load replaces the question set. The shape is taken as-is; validation
// is deliberately absent so hand-written lessons keep loading.
func (b *Bank) Load(questions []lesson.Question) {
	b.questions = questions
}

// PrepareSession builds a fresh uniform permutation of the questions and,
// independently, of each question's options, then derives the canonical
// answer map. Previous selections are discarded. Returns the question
// count. Safe to call again for a new session.
func (b *Bank) PrepareSession() int {
	b.shuffled = make([]lesson.Question, len(b.questions))
	copy(b.shuffled, b.questions)
	rand.Shuffle(len(b.shuffled), func(i, j int) {
		b.shuffled[i], b.shuffled[j] = b.shuffled[j], b.shuffled[i]
	})

	for i := range b.shuffled {
		opts := make([]lesson.Option, len(b.shuffled[i].Options))
		copy(opts, b.shuffled[i].Options)
		rand.Shuffle(len(opts), func(x, y int) {
			opts[x], opts[y] = opts[y], opts[x]
		})
		b.shuffled[i].Options = opts
	}

	b.answers = make(map[string]string)
	for _, q := range b.shuffled {
		if opt := q.CorrectOption(); opt != nil {
			b.answers[q.ID] = opt.Value
		} else {
			b.answers[q.ID] = ""
		}
	}

	b.selections = make(map[string]string)
	return len(b.shuffled)
}

// CorrectAnswerFor returns the canonical answer value for a question,
// "" when no option is flagged correct or the id is unknown.
func (b *Bank) CorrectAnswerFor(id string) string {
	return b.answers[id]
}

// RecordAnswer stores the user's selection for a question. Later calls
// overwrite earlier ones; there is no history.
func (b *Bank) RecordAnswer(id, value string) {
	b.selections[id] = value
}

// AnswerFor returns the most recent selection for a question and
// whether one was recorded.
func (b *Bank) AnswerFor(id string) (string, bool) {
	v, ok := b.selections[id]
	return v, ok
}

// QuestionAt looks a question up by id in the session ordering, nil if
// absent. Callers must guard.
func (b *Bank) QuestionAt(id string) *lesson.Question {
	for i := range b.shuffled {
		if b.shuffled[i].ID == id {
			return &b.shuffled[i]
		}
	}
	return nil
}

// IndexOf returns the position of a question in the session ordering,
// -1 if absent.
func (b *Bank) IndexOf(id string) int {
	for i := range b.shuffled {
		if b.shuffled[i].ID == id {
			return i
		}
	}
	return -1
}

// Questions returns the session ordering.
func (b *Bank) Questions() []lesson.Question {
	return b.shuffled
}

// Len returns the session question count.
func (b *Bank) Len() int {
	return len(b.shuffled)
}
