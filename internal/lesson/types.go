package lesson

// Lesson is a context-plus-questions unit. The context paragraphs are
// optional; a lesson loaded from a bare question array has none.
type Lesson struct {
	Context   []string   `json:"context,omitempty"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question. IDs are unique within
// a lesson; nothing else about the shape is validated on load.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option is one answer choice. At most one option per question should
// carry Correct=true, but lessons that break this are tolerated: the
// first flagged option is treated as canonical, and a question with
// none flagged has an empty canonical answer.
type Option struct {
	Value       string `json:"value"`
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// ExplanationFor returns the explanation attached to the option with
// the given value, or "" when the value matches no option.
func (q Question) ExplanationFor(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Explanation
		}
	}
	return ""
}

// CorrectOption returns the first option flagged correct, or nil.
func (q Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}
