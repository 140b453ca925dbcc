// Package align matches script sentences to transcribed sentences and
// assigns each pairing a similarity score and status.
package align

import (
	"vo-qc-service/internal/models"
	"vo-qc-service/internal/service/textnorm"
)

// Thresholds set the status boundaries for a single alignment.
type Thresholds struct {
	Match     float64 // score at or above -> match
	MinorDiff float64 // score at or above -> minor_diff
}

// DefaultThresholds returns the standard status boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Match: 0.99, MinorDiff: 0.85}
}

// Candidate is a strategy's pick for one script sentence. Index is -1
// when no transcribed sentence matched at all.
type Candidate struct {
	Index int
	Score float64
}

// Strategy selects, for each script sentence, the transcribed sentence
// it aligns with. The returned slice has one entry per script sentence,
// in script order.
type Strategy interface {
	Select(scorer textnorm.Scorer, script, transcribed []string) []Candidate
}

// Aligner pairs script sentences with transcribed sentences.
type Aligner struct {
	scorer     textnorm.Scorer
	strategy   Strategy
	thresholds Thresholds
}

// New creates an aligner. A nil strategy falls back to BestMatch, the
// non-exclusive search the engine has always used.
func New(scorer textnorm.Scorer, strategy Strategy, thresholds Thresholds) *Aligner {
	if strategy == nil {
		strategy = BestMatch{}
	}
	return &Aligner{scorer: scorer, strategy: strategy, thresholds: thresholds}
}

// Align produces one alignment per script sentence, in script order,
// regardless of how many transcribed sentences exist (including zero).
// Timing is copied positionally by alignment index; alignments beyond
// the timing list get zero timing.
func (a *Aligner) Align(script, transcribed []string, timings []models.SegmentTiming) []models.Alignment {
	candidates := a.strategy.Select(a.scorer, script, transcribed)

	alignments := make([]models.Alignment, len(script))
	for i, sent := range script {
		c := candidates[i]

		text := ""
		if c.Index >= 0 && c.Index < len(transcribed) {
			text = transcribed[c.Index]
		}

		alignments[i] = models.Alignment{
			Script:      sent,
			Transcribed: text,
			Similarity:  c.Score,
			Status:      a.status(c.Score),
		}

		if i < len(timings) {
			alignments[i].StartTime = timings[i].Start
			alignments[i].EndTime = timings[i].End
			alignments[i].Duration = timings[i].Duration
		}
	}
	return alignments
}

func (a *Aligner) status(score float64) string {
	switch {
	case score >= a.thresholds.Match:
		return models.StatusMatch
	case score >= a.thresholds.MinorDiff:
		return models.StatusMinorDiff
	default:
		return models.StatusMismatch
	}
}

// BestMatch searches all transcribed sentences for every script
// sentence and keeps the strictly best score, first-seen on ties.
// Matching is not exclusive: one transcribed sentence may be the best
// match for several script sentences. This favors local accuracy per
// script line over a global one-to-one assignment; repeated picks are
// caught downstream by duplicate detection.
type BestMatch struct{}

// Select implements Strategy.
func (BestMatch) Select(scorer textnorm.Scorer, script, transcribed []string) []Candidate {
	out := make([]Candidate, len(script))
	for i, sent := range script {
		best := Candidate{Index: -1, Score: 0.0}
		for j, trans := range transcribed {
			if score := scorer(sent, trans); score > best.Score {
				best = Candidate{Index: j, Score: score}
			}
		}
		out[i] = best
	}
	return out
}

// Greedy is the exclusive variant: once a transcribed sentence is
// chosen it is withdrawn from later script sentences.
type Greedy struct{}

// Select implements Strategy.
func (Greedy) Select(scorer textnorm.Scorer, script, transcribed []string) []Candidate {
	used := make([]bool, len(transcribed))
	out := make([]Candidate, len(script))
	for i, sent := range script {
		best := Candidate{Index: -1, Score: 0.0}
		for j, trans := range transcribed {
			if used[j] {
				continue
			}
			if score := scorer(sent, trans); score > best.Score {
				best = Candidate{Index: j, Score: score}
			}
		}
		if best.Index >= 0 {
			used[best.Index] = true
		}
		out[i] = best
	}
	return out
}
