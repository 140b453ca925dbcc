package textnorm

import (
	"regexp"
	"strings"
)

// Sentence boundaries: runs of terminal punctuation followed by
// whitespace. Covers English, Russian and Ukrainian punctuation.
var sentenceEndings = regexp.MustCompile(`[.!?]+\s+`)

// SplitSentences splits raw text into sentence units in source order.
// Whitespace is collapsed first so line breaks inside a sentence (which
// recognition output frequently contains) do not create spurious
// boundaries. Empty results are dropped.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.Join(strings.Fields(text), " ")

	var sentences []string
	for _, s := range sentenceEndings.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
