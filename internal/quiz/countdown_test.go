package quiz

import "testing"

func TestCountdownExpiresOnFinalTick(t *testing.T) {
	var c Countdown
	gen := c.Start(3)

	for i := 0; i < 2; i++ {
		remaining, expired, ok := c.Tick(gen)
		if !ok || expired {
			t.Fatalf("tick %d: remaining=%d expired=%v ok=%v", i+1, remaining, expired, ok)
		}
	}

	remaining, expired, ok := c.Tick(gen)
	if !ok || !expired || remaining != 0 {
		t.Fatalf("final tick: remaining=%d expired=%v ok=%v, want 0/true/true", remaining, expired, ok)
	}
	if c.Running() {
		t.Error("countdown still running after expiry")
	}

	// Further ticks on the expired timer are no-ops.
	if _, _, ok := c.Tick(gen); ok {
		t.Error("tick accepted after expiry")
	}
}

func TestCountdownStaleGeneration(t *testing.T) {
	var c Countdown
	old := c.Start(10)
	c.Start(20)

	remaining, expired, ok := c.Tick(old)
	if ok || expired {
		t.Errorf("stale tick: expired=%v ok=%v, want false/false", expired, ok)
	}
	if remaining != 20 {
		t.Errorf("stale tick touched remaining: %d, want 20", remaining)
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	var c Countdown
	gen := c.Start(5)
	c.Stop()
	c.Stop()

	if c.Running() {
		t.Error("running after stop")
	}
	if _, _, ok := c.Tick(gen); ok {
		t.Error("tick accepted after stop")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{600, "10:00"},
		{65, "1:05"},
		{9, "0:09"},
		{0, "0:00"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
