package speech

import (
	"strings"
	"testing"
)

func TestReaderSequencesChunks(t *testing.T) {
	// Two sentences too long to share a chunk.
	s1 := strings.Repeat("palabra ", 59) + "final."
	s2 := strings.Repeat("otra ", 59) + "fin."

	r := NewReader()
	chunk, gen, ok := r.Start([]string{s1, s2})
	if !ok {
		t.Fatal("expected a first chunk")
	}
	if !strings.HasPrefix(chunk, "palabra") {
		t.Errorf("first chunk = %q", chunk)
	}
	if r.State() != StateReading {
		t.Errorf("state = %v, want reading", r.State())
	}
	if idx, total := r.Progress(); idx != 0 || total != 2 {
		t.Errorf("progress = %d/%d, want 0/2", idx, total)
	}

	chunk, ok = r.Advance(gen)
	if !ok || !strings.HasPrefix(chunk, "otra") {
		t.Fatalf("second chunk = %q, ok=%v", chunk, ok)
	}

	if _, ok = r.Advance(gen); ok {
		t.Error("expected end of read-through")
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle after last chunk", r.State())
	}
}

func TestReaderNormalizesBeforeChunking(t *testing.T) {
	r := NewReader()
	chunk, _, ok := r.Start([]string{"Tod@s l@s estudiantes leen."})
	if !ok {
		t.Fatal("expected a chunk")
	}
	if chunk != "todos los estudiantes leen." {
		t.Errorf("chunk = %q", chunk)
	}
}

func TestReaderEmptyContext(t *testing.T) {
	r := NewReader()
	if _, _, ok := r.Start(nil); ok {
		t.Error("expected no chunk for empty context")
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.State())
	}
}

func TestReaderCancelInvalidatesToken(t *testing.T) {
	r := NewReader()
	_, gen, ok := r.Start([]string{"Una frase. Otra frase."})
	if !ok {
		t.Fatal("expected a chunk")
	}

	r.Cancel()
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.State())
	}
	if _, ok := r.Advance(gen); ok {
		t.Error("stale advance accepted after cancel")
	}
}

func TestReaderRestartInvalidatesOldToken(t *testing.T) {
	r := NewReader()
	_, old, _ := r.Start([]string{"Primera lectura."})
	_, gen, _ := r.Start([]string{"Segunda lectura."})

	if _, ok := r.Advance(old); ok {
		t.Error("stale token accepted after restart")
	}
	if gen == old {
		t.Error("restart reused the generation token")
	}
}

func TestReaderToggle(t *testing.T) {
	r := NewReader()
	r.Start([]string{"Una frase larga para leer."})

	if st := r.Toggle(); st != StatePaused || !r.Paused() {
		t.Fatalf("state = %v after pause", st)
	}
	if _, _, ok := r.Resume(); ok {
		t.Error("Resume returned a chunk while paused")
	}

	if st := r.Toggle(); st != StateReading {
		t.Fatalf("state = %v after resume", st)
	}
	chunk, _, ok := r.Resume()
	if !ok || chunk == "" {
		t.Errorf("Resume = %q, ok=%v", chunk, ok)
	}

	// Idle readers ignore toggles.
	r.Cancel()
	if st := r.Toggle(); st != StateIdle {
		t.Errorf("state = %v, want idle", st)
	}
}
