// Package openai provides a Whisper recognizer through any
// OpenAI-compatible audio transcription endpoint (the OpenAI API itself
// or a self-hosted Whisper server exposing the same contract).
package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"vo-qc-service/internal/service/asr"
)

// Config holds OpenAI backend configuration.
type Config struct {
	APIKey  string
	BaseURL string // empty -> api.openai.com
	Model   string // default model when the request does not pick one
}

// DefaultConfig returns the standard Whisper configuration.
func DefaultConfig() Config {
	return Config{Model: openai.Whisper1}
}

// Recognizer implements asr.Recognizer over the OpenAI audio API.
type Recognizer struct {
	client *openai.Client
	model  string
}

// New creates an OpenAI recognizer.
func New(cfg Config) *Recognizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &Recognizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Transcribe sends the audio file for transcription with verbose JSON
// output, which carries the detected language and timestamped segments.
func (r *Recognizer) Transcribe(ctx context.Context, audioPath string, opts asr.Options) (*asr.Result, error) {
	req := openai.AudioRequest{
		Model:    r.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	if opts.Model != "" {
		req.Model = opts.Model
	}
	if !opts.AutoDetect() {
		req.Language = opts.Language
	}
	if prompt := asr.BuildPrompt(opts.Terminology); prompt != "" {
		req.Prompt = prompt
	}

	resp, err := r.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", asr.ErrRecognition, err)
	}

	result := &asr.Result{
		Language: resp.Language,
		Text:     resp.Text,
		Segments: make([]asr.Segment, 0, len(resp.Segments)),
	}
	for _, seg := range resp.Segments {
		result.Segments = append(result.Segments, asr.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	return result, nil
}
