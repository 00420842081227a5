package quiz

import "fmt"

// Countdown is a one-second-tick countdown. The screen's tick loop
// drives it; each Start invalidates earlier generations so a tick from
// a replaced timer is a no-op rather than a double fire. Stopping an
// already-stopped countdown is likewise a no-op.
type Countdown struct {
	remaining  int
	generation int
	running    bool
}

// Start arms the countdown with a fresh budget and returns the
// generation token ticks must carry.
func (c *Countdown) Start(seconds int) int {
	c.generation++
	c.remaining = seconds
	c.running = true
	return c.generation
}

// Tick consumes one second for the given generation. ok is false for
// stale or stopped timers; expired is true on the tick that reaches
// zero, after which the countdown stops itself.
func (c *Countdown) Tick(generation int) (remaining int, expired, ok bool) {
	if !c.running || generation != c.generation {
		return c.remaining, false, false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.running = false
		return 0, true, true
	}
	return c.remaining, false, true
}

// Stop cancels the countdown. Idempotent.
func (c *Countdown) Stop() {
	c.running = false
}

// Running reports whether the countdown is armed.
func (c *Countdown) Running() bool {
	return c.running
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// FormatClock renders seconds as m:ss for the global timer display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
