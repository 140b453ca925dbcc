// Package asr defines the interface for speech recognition backends.
package asr

import (
	"context"
	"errors"
	"strings"
)

// ErrRecognition marks a recognition backend failure. Callers surface
// it as a per-item transcription error rather than aborting the batch.
var ErrRecognition = errors.New("recognition failed")

// Segment is one timestamped span of recognized speech. Start and End
// are seconds from the beginning of the audio, End >= Start. Backends
// produce segments in time order.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the complete output for one audio file.
type Result struct {
	Language string // detected (or forced) language tag
	Text     string // full transcription
	Segments []Segment
}

// Options tune a single transcription call.
type Options struct {
	// Language forces recognition to a specific language. Empty or
	// "auto" lets the backend detect it.
	Language string
	// Model selects a backend-specific model. Empty means the
	// backend's configured default. Model lifecycle (load/switch) is
	// the backend's private concern.
	Model string
	// Terminology is an optional newline-separated glossary passed to
	// the backend as a recognition hint.
	Terminology string
}

// AutoDetect reports whether language detection is left to the backend.
func (o Options) AutoDetect() bool {
	return o.Language == "" || strings.EqualFold(o.Language, "auto")
}

// Recognizer transcribes one audio file per call. Implementations must
// be safe for sequential reuse across requests; the engine never calls
// Transcribe concurrently.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error)
}

// maxPromptTerms caps the glossary passed to backends as a prompt.
const maxPromptTerms = 20

// BuildPrompt formats terminology lines into an initial prompt for
// backends that accept free-text recognition hints. Returns "" when
// there is nothing usable.
func BuildPrompt(terminology string) string {
	terms := SplitTerms(terminology)
	if len(terms) == 0 {
		return ""
	}
	if len(terms) > maxPromptTerms {
		terms = terms[:maxPromptTerms]
	}
	return "Recognize these terms correctly: " + strings.Join(terms, ", ")
}

// SplitTerms splits a newline-separated glossary into trimmed,
// non-empty terms.
func SplitTerms(terminology string) []string {
	var terms []string
	for _, line := range strings.Split(terminology, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
