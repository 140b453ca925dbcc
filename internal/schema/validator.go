// Package schema validates incoming API payloads.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"vo-qc-service/internal/models"
)

// Validation errors returned for malformed analyze requests.
var (
	ErrNoAudioFiles = errors.New("audio_files must contain at least one entry")
	ErrNoScript     = errors.New("script_sentences or script_lines must be provided")
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateAnalyzeRequest checks that an analyze request carries the
// minimum data needed to run: at least one audio file with a path, and
// a script in either pre-split or raw-line form.
func (v *Validator) ValidateAnalyzeRequest(req *models.AnalyzeRequest) error {
	if req == nil {
		return errors.New("request body is required")
	}
	if len(req.AudioFiles) == 0 {
		return ErrNoAudioFiles
	}
	for i, f := range req.AudioFiles {
		if strings.TrimSpace(f.Path) == "" {
			return fmt.Errorf("audio_files[%d]: path is required", i)
		}
	}
	if !hasScript(req.ScriptSentences) && !hasScript(req.ScriptLines) {
		return ErrNoScript
	}
	return nil
}

func hasScript(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
