package quiz

// maxMultiplier caps the streak bonus: a long streak never awards more
// than 10 × 5 points per question.
const maxMultiplier = 5

// Score tracks points, the consecutive-correct streak, and the 1-based
// position within a session.
type Score struct {
	Points   int
	Streak   int
	Position int
	Total    int
}

// NewScore creates a score tracker for a session of total questions.
func NewScore(total int) *Score {
	return &Score{Position: 1, Total: total}
}

// Reset zeroes points and streak and returns to the first question.
func (s *Score) Reset() {
	s.Points = 0
	s.Streak = 0
	s.Position = 1
}

// RecordCorrect awards 10 × min(streak+1, 5) points, extends the
// streak, and returns the points awarded by this call.
func (s *Score) RecordCorrect() int {
	award := 10 * min(s.Streak+1, maxMultiplier)
	s.Points += award
	s.Streak++
	return award
}

// RecordIncorrect resets the streak. Points are untouched.
func (s *Score) RecordIncorrect() {
	s.Streak = 0
}

// Multiplier returns the current streak multiplier for display.
func (s *Score) Multiplier() int {
	return min(s.Streak, maxMultiplier)
}

// Advance moves to the next question, clamped at the total.
func (s *Score) Advance() {
	if s.Position < s.Total {
		s.Position++
	}
}

// JumpTo moves to an arbitrary position. Review navigation passes
// 1..Total by contract; no further validation happens here.
func (s *Score) JumpTo(position int) {
	s.Position = position
}

// ProgressFraction returns Position/Total, 0 for an empty session.
func (s *Score) ProgressFraction() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Total)
}
