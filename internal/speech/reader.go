package speech

import "strings"

// State is the reader's playback state.
type State int

const (
	StateIdle State = iota
	StateReading
	StatePaused
)

// Reader sequences context paragraphs through normalization, chunking,
// and chunk-by-chunk playback. It is a pure state machine: the owning
// screen speaks each chunk through a Synthesizer and calls Advance when
// playback finishes. Generations work like countdown timers, so a
// completion event from a cancelled read-through is ignored.
type Reader struct {
	chunks     []string
	index      int
	state      State
	generation int
}

// NewReader creates an idle reader.
func NewReader() *Reader {
	return &Reader{}
}

// Start prepares a fresh read-through of the given paragraphs and
// returns the first chunk with its generation token. ok is false when
// the paragraphs contain no speakable text.
func (r *Reader) Start(paragraphs []string) (chunk string, generation int, ok bool) {
	r.generation++
	r.chunks = SplitChunks(Normalize(strings.Join(paragraphs, " ")))
	r.index = 0

	if len(r.chunks) == 0 {
		r.state = StateIdle
		return "", r.generation, false
	}
	r.state = StateReading
	return r.chunks[0], r.generation, true
}

// Advance moves past the chunk that just finished playing. It returns
// the next chunk, or ok=false when the read-through is over, the token
// is stale, or playback was cancelled. Finishing the last chunk returns
// the reader to idle.
func (r *Reader) Advance(generation int) (chunk string, ok bool) {
	if generation != r.generation || r.state == StateIdle {
		return "", false
	}
	r.index++
	if r.index >= len(r.chunks) {
		r.state = StateIdle
		return "", false
	}
	return r.chunks[r.index], true
}

// Toggle flips between reading and paused. While paused the current
// chunk finishes playing but Advance-driven continuation waits for the
// next Toggle. Toggling an idle reader does nothing.
func (r *Reader) Toggle() State {
	switch r.state {
	case StateReading:
		r.state = StatePaused
	case StatePaused:
		r.state = StateReading
	}
	return r.state
}

// Resume returns the chunk to speak after unpausing, ok=false when the
// reader is not mid-read.
func (r *Reader) Resume() (chunk string, generation int, ok bool) {
	if r.state != StateReading || r.index >= len(r.chunks) {
		return "", r.generation, false
	}
	return r.chunks[r.index], r.generation, true
}

// Paused reports whether continuation is on hold.
func (r *Reader) Paused() bool {
	return r.state == StatePaused
}

// Cancel abandons the read-through. Later Advance calls with the old
// token are no-ops.
func (r *Reader) Cancel() {
	r.generation++
	r.state = StateIdle
	r.chunks = nil
	r.index = 0
}

// State returns the current playback state.
func (r *Reader) State() State {
	return r.state
}

// Progress returns the 0-based chunk index and the chunk count.
func (r *Reader) Progress() (index, total int) {
	return r.index, len(r.chunks)
}
