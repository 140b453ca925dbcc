package align

import (
	"testing"

	"vo-qc-service/internal/models"
)

// exactScorer scores 1.0 on equality and 0.0 otherwise.
func exactScorer(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}

func TestAlign_OnePerScriptSentence(t *testing.T) {
	a := New(exactScorer, nil, DefaultThresholds())

	script := []string{"one", "two", "three"}
	transcribed := []string{"two"}

	got := a.Align(script, transcribed, nil)

	if len(got) != len(script) {
		t.Fatalf("expected %d alignments, got %d", len(script), len(got))
	}
	for i, al := range got {
		if al.Script != script[i] {
			t.Errorf("alignment %d: script %q, want %q", i, al.Script, script[i])
		}
	}
}

func TestAlign_NoTranscribedSentences(t *testing.T) {
	a := New(exactScorer, nil, DefaultThresholds())

	script := []string{"one", "two"}
	got := a.Align(script, nil, nil)

	if len(got) != 2 {
		t.Fatalf("expected 2 alignments, got %d", len(got))
	}
	for i, al := range got {
		if al.Transcribed != "" {
			t.Errorf("alignment %d: expected empty transcribed, got %q", i, al.Transcribed)
		}
		if al.Similarity != 0.0 {
			t.Errorf("alignment %d: expected 0 similarity, got %v", i, al.Similarity)
		}
		if al.Status != models.StatusMismatch {
			t.Errorf("alignment %d: expected mismatch status, got %q", i, al.Status)
		}
	}
}

func TestAlign_Status(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"exact match", 1.0, models.StatusMatch},
		{"at match boundary", 0.99, models.StatusMatch},
		{"just below match", 0.98, models.StatusMinorDiff},
		{"at minor boundary", 0.85, models.StatusMinorDiff},
		{"just below minor", 0.84, models.StatusMismatch},
		{"zero", 0.0, models.StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := func(a, b string) float64 { return tt.score }
			a := New(scorer, nil, DefaultThresholds())

			got := a.Align([]string{"s"}, []string{"t"}, nil)
			if got[0].Status != tt.want {
				t.Errorf("score %v: status %q, want %q", tt.score, got[0].Status, tt.want)
			}
		})
	}
}

func TestAlign_TimingCopiedPositionally(t *testing.T) {
	a := New(exactScorer, nil, DefaultThresholds())

	script := []string{"one", "two", "three"}
	transcribed := []string{"one", "two", "three"}
	timings := []models.SegmentTiming{
		{Start: 0.0, End: 1.5, Duration: 1.5},
		{Start: 2.0, End: 3.0, Duration: 1.0},
	}

	got := a.Align(script, transcribed, timings)

	if got[0].StartTime != 0.0 || got[0].EndTime != 1.5 || got[0].Duration != 1.5 {
		t.Errorf("alignment 0 timing = %v/%v/%v, want 0/1.5/1.5",
			got[0].StartTime, got[0].EndTime, got[0].Duration)
	}
	if got[1].StartTime != 2.0 || got[1].EndTime != 3.0 {
		t.Errorf("alignment 1 timing = %v/%v, want 2/3", got[1].StartTime, got[1].EndTime)
	}
	// Beyond the timing list
	if got[2].StartTime != 0.0 || got[2].EndTime != 0.0 || got[2].Duration != 0.0 {
		t.Errorf("alignment 2 should have zero timing, got %v/%v/%v",
			got[2].StartTime, got[2].EndTime, got[2].Duration)
	}
}

func TestBestMatch_NonExclusive(t *testing.T) {
	// Both script sentences match the same transcribed sentence.
	candidates := BestMatch{}.Select(exactScorer, []string{"same", "same"}, []string{"same", "other"})

	for i, c := range candidates {
		if c.Index != 0 {
			t.Errorf("candidate %d: index %d, want 0", i, c.Index)
		}
		if c.Score != 1.0 {
			t.Errorf("candidate %d: score %v, want 1.0", i, c.Score)
		}
	}
}

func TestBestMatch_FirstSeenWinsTies(t *testing.T) {
	constant := func(a, b string) float64 { return 0.5 }

	candidates := BestMatch{}.Select(constant, []string{"s"}, []string{"t0", "t1", "t2"})

	if candidates[0].Index != 0 {
		t.Errorf("tie should keep first-seen index 0, got %d", candidates[0].Index)
	}
}

func TestBestMatch_NoMatch(t *testing.T) {
	zero := func(a, b string) float64 { return 0.0 }

	candidates := BestMatch{}.Select(zero, []string{"s"}, []string{"t"})

	if candidates[0].Index != -1 {
		t.Errorf("expected index -1 when nothing scores above zero, got %d", candidates[0].Index)
	}
}

func TestGreedy_Exclusive(t *testing.T) {
	candidates := Greedy{}.Select(exactScorer, []string{"same", "same"}, []string{"same", "same"})

	if candidates[0].Index != 0 {
		t.Errorf("first pick: index %d, want 0", candidates[0].Index)
	}
	if candidates[1].Index != 1 {
		t.Errorf("second pick should skip the used sentence: index %d, want 1", candidates[1].Index)
	}
}
