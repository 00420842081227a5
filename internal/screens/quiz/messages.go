package quiz

import "time"

// difficultyPickedMsg is sent when a difficulty tier is chosen from the menu.
type difficultyPickedMsg string

// timerTickMsg is sent every second to update the countdowns.
type timerTickMsg time.Time

// speechDoneMsg is sent when one context chunk finishes playing.
type speechDoneMsg struct {
	generation int
	err        error
}
