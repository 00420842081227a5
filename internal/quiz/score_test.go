package quiz

import "testing"

func TestRecordCorrectStreakCap(t *testing.T) {
	s := NewScore(10)

	// 7 consecutive correct answers: 10×(1+2+3+4+5+5+5) = 250.
	awards := []int{10, 20, 30, 40, 50, 50, 50}
	for i, want := range awards {
		got := s.RecordCorrect()
		if got != want {
			t.Errorf("award %d = %d, want %d", i+1, got, want)
		}
	}
	if s.Points != 250 {
		t.Errorf("points = %d, want 250", s.Points)
	}
	if s.Streak != 7 {
		t.Errorf("streak = %d, want 7", s.Streak)
	}
	if s.Multiplier() != 5 {
		t.Errorf("multiplier = %d, want 5", s.Multiplier())
	}
}

func TestRecordIncorrectResetsStreak(t *testing.T) {
	tests := []struct {
		name         string
		priorCorrect int
	}{
		{"no streak", 0},
		{"short streak", 2},
		{"capped streak", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScore(20)
			for i := 0; i < tt.priorCorrect; i++ {
				s.RecordCorrect()
			}
			pointsBefore := s.Points

			s.RecordIncorrect()

			if s.Streak != 0 {
				t.Errorf("streak = %d, want 0", s.Streak)
			}
			if s.Points != pointsBefore {
				t.Errorf("points changed: %d -> %d", pointsBefore, s.Points)
			}
		})
	}
}

func TestAdvanceClampsAtTotal(t *testing.T) {
	s := NewScore(3)
	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if s.Position != 3 {
		t.Errorf("position = %d, want 3", s.Position)
	}
}

func TestProgressFraction(t *testing.T) {
	tests := []struct {
		name     string
		position int
		total    int
		want     float64
	}{
		{"empty session", 1, 0, 0},
		{"first of four", 1, 4, 0.25},
		{"last question", 4, 4, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScore(tt.total)
			s.JumpTo(tt.position)
			if got := s.ProgressFraction(); got != tt.want {
				t.Errorf("fraction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewScore(5)
	s.RecordCorrect()
	s.RecordCorrect()
	s.Advance()

	s.Reset()

	if s.Points != 0 || s.Streak != 0 || s.Position != 1 {
		t.Errorf("after reset: points=%d streak=%d position=%d, want 0/0/1", s.Points, s.Streak, s.Position)
	}
	if s.Total != 5 {
		t.Errorf("total = %d, want 5 (reset must not change it)", s.Total)
	}
}
