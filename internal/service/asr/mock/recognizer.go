// Package mock provides a canned recognizer for tests and local
// development without a speech backend or credentials.
package mock

import (
	"context"
	"sync"

	"vo-qc-service/internal/service/asr"
)

// DefaultTranscripts provides sample results for simulation. Paths with
// no scripted result cycle through these.
var DefaultTranscripts = []asr.Result{
	{
		Language: "en",
		Text:     "Hello world. Good morning.",
		Segments: []asr.Segment{
			{Start: 0.0, End: 1.2, Text: "Hello world."},
			{Start: 1.4, End: 2.6, Text: "Good morning."},
		},
	},
	{
		Language: "en",
		Text:     "Thank you for calling. How can I help you today.",
		Segments: []asr.Segment{
			{Start: 0.0, End: 1.8, Text: "Thank you for calling."},
			{Start: 2.0, End: 4.1, Text: "How can I help you today."},
		},
	},
	{
		Language: "ru",
		Text:     "Нажмите кнопку один. Затем кнопку два.",
		Segments: []asr.Segment{
			{Start: 0.0, End: 1.5, Text: "Нажмите кнопку один."},
			{Start: 1.7, End: 3.2, Text: "Затем кнопку два."},
		},
	},
}

// Recognizer implements asr.Recognizer with deterministic canned
// results. Tests can script results per path or force errors.
type Recognizer struct {
	mu      sync.Mutex
	scripts map[string]*asr.Result
	err     error
	calls   int
}

// New creates a mock recognizer cycling through DefaultTranscripts.
func New() *Recognizer {
	return &Recognizer{scripts: make(map[string]*asr.Result)}
}

// SetResult scripts the result returned for a specific audio path.
func (r *Recognizer) SetResult(path string, res *asr.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[path] = res
}

// FailWith makes every subsequent Transcribe call return err. Pass nil
// to clear.
func (r *Recognizer) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Calls reports how many Transcribe calls were made.
func (r *Recognizer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Transcribe returns the scripted result for the path, or cycles the
// defaults. When a language is forced, the result echoes it back the
// way a real backend would.
func (r *Recognizer) Transcribe(_ context.Context, audioPath string, opts asr.Options) (*asr.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++

	if r.err != nil {
		return nil, r.err
	}

	var result asr.Result
	if scripted, ok := r.scripts[audioPath]; ok {
		result = *scripted
	} else {
		result = DefaultTranscripts[(r.calls-1)%len(DefaultTranscripts)]
	}

	if !opts.AutoDetect() {
		result.Language = opts.Language
	}

	segments := make([]asr.Segment, len(result.Segments))
	copy(segments, result.Segments)
	result.Segments = segments

	return &result, nil
}
