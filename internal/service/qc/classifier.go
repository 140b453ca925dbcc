// Package qc classifies transcriptions against the expected script and
// detects duplicated voice-over takes.
package qc

import (
	"fmt"
	"math"

	"vo-qc-service/internal/models"
	"vo-qc-service/internal/service/align"
	"vo-qc-service/internal/service/textnorm"
)

// Thresholds hold every similarity boundary the engine uses. The
// defaults match the values the engine has always hardcoded; requests
// may override MinorDiff and Duplicate per call.
type Thresholds struct {
	Match           float64 // full-text similarity at or above -> NONE
	MinorDiff       float64 // full-text similarity at or above -> MINOR_DIFF
	Duplicate       float64 // similarity strictly above -> duplicate
	MinDuplicateLen int     // sentences shorter than this are never duplicate sources
}

// DefaultThresholds returns the documented defaults: 0.99/0.85 for
// classification, 0.90 for duplicates, 5-character minimum.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Match:           0.99,
		MinorDiff:       0.85,
		Duplicate:       0.90,
		MinDuplicateLen: 5,
	}
}

// WithOverrides applies request-supplied threshold overrides. Only
// values inside (0, 1) take effect; anything else (including the legacy
// advisory duplicate_gap_threshold of 1.0) keeps the configured value.
func (t Thresholds) WithOverrides(similarity, duplicate float64) Thresholds {
	if similarity > 0 && similarity < 1 {
		t.MinorDiff = similarity
	}
	if duplicate > 0 && duplicate < 1 {
		t.Duplicate = duplicate
	}
	return t
}

// AlignThresholds converts to the per-sentence status boundaries.
func (t Thresholds) AlignThresholds() align.Thresholds {
	return align.Thresholds{Match: t.Match, MinorDiff: t.MinorDiff}
}

// Classifier maps similarity scores onto the discrete error taxonomy
// and constructs the structured issue list.
type Classifier struct {
	scorer     textnorm.Scorer
	thresholds Thresholds
}

// NewClassifier creates a classifier. A nil scorer falls back to the
// default similarity scorer.
func NewClassifier(scorer textnorm.Scorer, thresholds Thresholds) *Classifier {
	if scorer == nil {
		scorer = textnorm.Similarity
	}
	return &Classifier{scorer: scorer, thresholds: thresholds}
}

// ClassifyText determines the file-level error type from the overall
// similarity between the full script and the full transcription.
func (c *Classifier) ClassifyText(scriptText, transcribedText string) models.ErrorType {
	similarity := c.scorer(scriptText, transcribedText)

	switch {
	case similarity >= c.thresholds.Match:
		return models.ErrorNone
	case similarity >= c.thresholds.MinorDiff:
		return models.ErrorMinorDiff
	default:
		return models.ErrorMismatch
	}
}

// AggregateSimilarity is the arithmetic mean of all alignment scores
// strictly greater than zero. Zero-score alignments are excluded from
// the average entirely, not counted as zero contributions, so an item
// with one recognized sentence among many misses still reports that
// sentence's score.
func AggregateSimilarity(alignments []models.Alignment) float64 {
	var sum float64
	var n int
	for _, a := range alignments {
		if a.Similarity > 0 {
			sum += a.Similarity
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

// Issues builds the per-sentence issue list for every alignment whose
// status is not match. When the file-level classification indicates a
// problem but no sentence-level issue exists (for example, zero
// alignments), a single synthetic overall issue is appended.
func (c *Classifier) Issues(alignments []models.Alignment, errorType models.ErrorType, overallSimilarity float64) []models.Issue {
	issues := []models.Issue{}

	for i, a := range alignments {
		idx := i
		sim := Round3(a.Similarity)

		switch a.Status {
		case models.StatusMismatch:
			issues = append(issues, models.Issue{
				Type:                models.IssueSentenceMismatch,
				SentenceIndex:       &idx,
				ScriptSentence:      a.Script,
				TranscribedSentence: a.Transcribed,
				Similarity:          &sim,
				Note:                fmt.Sprintf("Sentence %d does not match", i+1),
			})
		case models.StatusMinorDiff:
			issues = append(issues, models.Issue{
				Type:                models.IssueSentenceMinorDiff,
				SentenceIndex:       &idx,
				ScriptSentence:      a.Script,
				TranscribedSentence: a.Transcribed,
				Similarity:          &sim,
				Note:                fmt.Sprintf("Sentence %d has minor differences", i+1),
			})
		}
	}

	if len(issues) == 0 {
		sim := Round3(overallSimilarity)
		switch errorType {
		case models.ErrorMismatch:
			issues = append(issues, models.Issue{
				Type:       models.IssueMismatch,
				Similarity: &sim,
				Note:       "Overall text mismatch",
			})
		case models.ErrorMinorDiff:
			issues = append(issues, models.Issue{
				Type:       models.IssueMinorDiff,
				Similarity: &sim,
				Note:       "Text differs slightly from script",
			})
		}
	}

	return issues
}

// Round3 rounds a similarity score to three decimals for reporting.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
