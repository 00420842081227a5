package speech

import (
	"regexp"
	"strings"
)

// maxChunkWords bounds each synthesis request. Long requests get cut
// off by the TTS endpoint, so text is packed sentence by sentence.
const maxChunkWords = 100

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// SplitChunks breaks text into synthesis-sized chunks on sentence
// boundaries. A sentence never straddles two chunks; text without
// terminal punctuation becomes a single chunk.
func SplitChunks(text string) []string {
	sentences := sentencePattern.FindAllString(text, -1)
	if sentences == nil {
		sentences = []string{text}
	}

	var chunks []string
	var current strings.Builder
	wordCount := 0

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		words := len(strings.Fields(sentence))
		if wordCount+words <= maxChunkWords {
			current.WriteString(sentence)
			current.WriteString(" ")
			wordCount += words
			continue
		}
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		current.WriteString(sentence)
		current.WriteString(" ")
		wordCount = words
	}
	if chunk := strings.TrimSpace(current.String()); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}
