package speech

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitChunksShortText(t *testing.T) {
	chunks := SplitChunks("Una oración corta. Otra más.")
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1: %v", len(chunks), chunks)
	}
	if chunks[0] != "Una oración corta. Otra más." {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestSplitChunksJoinsWithSingleSpaces(t *testing.T) {
	chunks := SplitChunks("Primera frase. Segunda frase. ¡Tercera frase!")
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1: %v", len(chunks), chunks)
	}
	if strings.Contains(chunks[0], "  ") {
		t.Errorf("chunk has a double space: %q", chunks[0])
	}
}

func TestSplitChunksNoTerminalPunctuation(t *testing.T) {
	chunks := SplitChunks("sin puntuación final")
	if len(chunks) != 1 || chunks[0] != "sin puntuación final" {
		t.Fatalf("chunks = %v", chunks)
	}
}

func TestSplitChunksRespectsWordLimit(t *testing.T) {
	// Sentences of 60 words each: no pair fits in one 100-word chunk.
	sentence := strings.Repeat("palabra ", 59) + "final."
	text := strings.Repeat(sentence+" ", 3)

	chunks := SplitChunks(text)
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	for i, c := range chunks {
		if n := len(strings.Fields(c)); n > 100 {
			t.Errorf("chunk %d has %d words", i, n)
		}
	}
}

func TestSplitChunksPacksSentences(t *testing.T) {
	// Ten 10-word sentences pack into a single 100-word chunk.
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%s final. ", strings.Repeat("palabra ", 9))
	}

	chunks := SplitChunks(b.String())
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
}

func TestSplitChunksKeepsSentencesIntact(t *testing.T) {
	sentence := strings.Repeat("palabra ", 99) + "final."
	text := sentence + " Corta."

	chunks := SplitChunks(text)
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2: a full chunk cannot absorb another sentence", len(chunks))
	}
	if chunks[1] != "Corta." {
		t.Errorf("second chunk = %q", chunks[1])
	}
}

func TestSplitChunksEmpty(t *testing.T) {
	if chunks := SplitChunks(""); chunks != nil {
		t.Errorf("chunks = %v, want none", chunks)
	}
	if chunks := SplitChunks("   "); chunks != nil {
		t.Errorf("whitespace chunks = %v, want none", chunks)
	}
}
