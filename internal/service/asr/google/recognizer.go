// Package google provides a Google Cloud Speech-to-Text recognizer.
package google

import (
	"context"
	"fmt"
	"os"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"vo-qc-service/internal/service/asr"
)

// Config holds Google backend configuration.
type Config struct {
	LanguageCode  string // used when the request does not force a language
	SampleRateHz  int32
	AudioEncoding string
}

// DefaultConfig returns the standard recognition configuration.
func DefaultConfig() Config {
	return Config{
		LanguageCode:  "en-US",
		SampleRateHz:  16000,
		AudioEncoding: "LINEAR16",
	}
}

// Recognizer implements asr.Recognizer using Google Cloud Speech batch
// recognition with word time offsets.
type Recognizer struct {
	client *speech.Client
	cfg    Config
}

// New creates a Google recognizer.
// Requires GOOGLE_APPLICATION_CREDENTIALS environment variable to be set.
func New(ctx context.Context, cfg Config) (*Recognizer, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Recognizer{client: c, cfg: cfg}, nil
}

// Transcribe runs batch recognition on the audio file. Word time
// offsets are enabled so each result maps to a timestamped segment;
// terminology becomes a speech context phrase hint.
func (r *Recognizer) Transcribe(ctx context.Context, audioPath string, opts asr.Options) (*asr.Result, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", asr.ErrRecognition, err)
	}

	language := r.cfg.LanguageCode
	if !opts.AutoDetect() {
		language = opts.Language
	}

	config := &speechpb.RecognitionConfig{
		Encoding:              parseAudioEncoding(r.cfg.AudioEncoding),
		SampleRateHertz:       r.cfg.SampleRateHz,
		LanguageCode:          language,
		EnableWordTimeOffsets: true,
	}
	if terms := asr.SplitTerms(opts.Terminology); len(terms) > 0 {
		config.SpeechContexts = []*speechpb.SpeechContext{{Phrases: terms}}
	}

	resp, err := r.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: config,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", asr.ErrRecognition, err)
	}

	result := &asr.Result{Language: language}
	for _, res := range resp.Results {
		if len(res.Alternatives) == 0 {
			continue
		}
		alt := res.Alternatives[0]
		if alt.Transcript == "" {
			continue
		}

		seg := asr.Segment{Text: alt.Transcript}
		if n := len(alt.Words); n > 0 {
			seg.Start = alt.Words[0].StartTime.AsDuration().Seconds()
			seg.End = alt.Words[n-1].EndTime.AsDuration().Seconds()
		}

		if result.Text != "" {
			result.Text += " "
		}
		result.Text += alt.Transcript
		result.Segments = append(result.Segments, seg)

		if res.LanguageCode != "" {
			result.Language = res.LanguageCode
		}
	}

	return result, nil
}

// Close releases the underlying client.
func (r *Recognizer) Close() error {
	return r.client.Close()
}

// parseAudioEncoding maps an encoding name to the Speech API enum.
// Unknown names fall back to LINEAR16.
func parseAudioEncoding(encoding string) speechpb.RecognitionConfig_AudioEncoding {
	switch encoding {
	case "LINEAR16":
		return speechpb.RecognitionConfig_LINEAR16
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC
	case "AMR":
		return speechpb.RecognitionConfig_AMR
	case "AMR_WB":
		return speechpb.RecognitionConfig_AMR_WB
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS
	case "SPEEX_WITH_HEADER_BYTE":
		return speechpb.RecognitionConfig_SPEEX_WITH_HEADER_BYTE
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS
	default:
		return speechpb.RecognitionConfig_LINEAR16
	}
}
