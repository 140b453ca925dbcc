package qc

import (
	"testing"

	"vo-qc-service/internal/models"
)

// equalityScorer scores 0.95 on exact equality, 0.1 otherwise.
func equalityScorer(a, b string) float64 {
	if a == b {
		return 0.95
	}
	return 0.1
}

func newTestDetector() *DuplicateDetector {
	return NewDuplicateDetector(equalityScorer, 0.90, 5)
}

func itemWithSentences(sentences ...string) models.AnalysisItem {
	alignments := make([]models.Alignment, len(sentences))
	for i, s := range sentences {
		alignments[i] = models.Alignment{Transcribed: s}
	}
	return models.AnalysisItem{
		ErrorType:          models.ErrorNone,
		SentenceAlignments: alignments,
		Issues:             []models.Issue{},
	}
}

func TestDetect_WithinItem(t *testing.T) {
	d := newTestDetector()
	item := itemWithSentences("press the button", "something else", "press the button")

	out := d.Detect([]models.AnalysisItem{item})

	alignments := out[0].SentenceAlignments
	if alignments[0].DuplicateInfo != nil {
		t.Error("source sentence should not be tagged")
	}
	if alignments[1].DuplicateInfo != nil {
		t.Error("unrelated sentence should not be tagged")
	}

	info := alignments[2].DuplicateInfo
	if info == nil {
		t.Fatal("expected sentence 3 tagged as duplicate")
	}
	if !info.IsDuplicate {
		t.Error("IsDuplicate should be true")
	}
	if info.ReferenceSentence != 1 {
		t.Errorf("reference sentence = %d, want 1", info.ReferenceSentence)
	}
	if info.Similarity != 0.95 {
		t.Errorf("similarity = %v, want 0.95", info.Similarity)
	}
	if info.Note != "Duplicate of sentence 1 (within same audio)" {
		t.Errorf("note = %q", info.Note)
	}
}

func TestDetect_WithinItem_ShortSourceSkipped(t *testing.T) {
	d := newTestDetector()
	item := itemWithSentences("ok", "ok")

	out := d.Detect([]models.AnalysisItem{item})

	if out[0].SentenceAlignments[1].DuplicateInfo != nil {
		t.Error("sentences shorter than the minimum should never act as duplicate sources")
	}
}

func TestDetect_WithinItem_FirstPredecessorWins(t *testing.T) {
	d := newTestDetector()
	item := itemWithSentences("repeat me", "repeat me", "repeat me")

	out := d.Detect([]models.AnalysisItem{item})

	alignments := out[0].SentenceAlignments
	if alignments[1].DuplicateInfo == nil || alignments[1].DuplicateInfo.ReferenceSentence != 1 {
		t.Error("sentence 2 should reference sentence 1")
	}
	// Sentence 3 already tagged by sentence 1's pass; sentence 2 must not overwrite.
	if alignments[2].DuplicateInfo == nil || alignments[2].DuplicateInfo.ReferenceSentence != 1 {
		t.Errorf("sentence 3 should reference sentence 1, got %+v", alignments[2].DuplicateInfo)
	}
}

func TestDetect_InterItem(t *testing.T) {
	d := newTestDetector()

	a := itemWithSentences("press the button")
	a.TranscribedText = "press the button"
	b := itemWithSentences("press the button")
	b.TranscribedText = "press the button"

	out := d.Detect([]models.AnalysisItem{a, b})

	if out[0].ErrorType != models.ErrorNone {
		t.Errorf("earlier item must stay clean, got %q", out[0].ErrorType)
	}
	if out[1].ErrorType != models.ErrorDuplicate {
		t.Fatalf("later item should be DUPLICATE, got %q", out[1].ErrorType)
	}
	if out[1].DuplicateOf != "Item 1" {
		t.Errorf("DuplicateOf = %q, want %q", out[1].DuplicateOf, "Item 1")
	}

	if len(out[1].Issues) != 1 {
		t.Fatalf("expected 1 duplicate issue, got %d", len(out[1].Issues))
	}
	issue := out[1].Issues[0]
	if issue.Type != models.IssueDuplicate {
		t.Errorf("issue type = %q, want %q", issue.Type, models.IssueDuplicate)
	}
	if issue.ReferenceIndex == nil || *issue.ReferenceIndex != 0 {
		t.Errorf("reference index = %v, want 0", issue.ReferenceIndex)
	}
	if issue.Note != "Duplicate/same text as item 1" {
		t.Errorf("note = %q", issue.Note)
	}
}

func TestDetect_InterItem_OnlyCleanItemsParticipate(t *testing.T) {
	d := newTestDetector()

	a := itemWithSentences("press the button")
	a.TranscribedText = "press the button"
	a.ErrorType = models.ErrorMismatch
	b := itemWithSentences("press the button")
	b.TranscribedText = "press the button"

	out := d.Detect([]models.AnalysisItem{a, b})

	if out[1].ErrorType != models.ErrorNone {
		t.Errorf("item should stay clean when the earlier match is not NONE, got %q", out[1].ErrorType)
	}
}

func TestDetect_InterItem_DifferentTextNotFlagged(t *testing.T) {
	d := newTestDetector()

	a := itemWithSentences("press the button")
	a.TranscribedText = "press the button"
	b := itemWithSentences("enter your pin")
	b.TranscribedText = "enter your pin"

	out := d.Detect([]models.AnalysisItem{a, b})

	if out[1].ErrorType != models.ErrorNone {
		t.Errorf("different text flagged as duplicate: %q", out[1].ErrorType)
	}
}

func TestDetect_SingleItemNeverDuplicateOfItself(t *testing.T) {
	d := newTestDetector()

	item := itemWithSentences("press the button")
	item.TranscribedText = "press the button"

	out := d.Detect([]models.AnalysisItem{item})

	if out[0].ErrorType != models.ErrorNone {
		t.Errorf("single item flagged as duplicate of itself: %q", out[0].ErrorType)
	}
	if out[0].DuplicateOf != "" {
		t.Errorf("DuplicateOf = %q, want empty", out[0].DuplicateOf)
	}
}

func TestDetect_InputNotMutated(t *testing.T) {
	d := newTestDetector()

	items := []models.AnalysisItem{
		itemWithSentences("press the button"),
		itemWithSentences("press the button"),
	}
	items[0].TranscribedText = "press the button"
	items[1].TranscribedText = "press the button"

	_ = d.Detect(items)

	if items[1].ErrorType != models.ErrorNone {
		t.Error("input item error type was mutated")
	}
	if items[1].DuplicateOf != "" {
		t.Error("input item DuplicateOf was mutated")
	}
	if len(items[1].Issues) != 0 {
		t.Error("input item issues were mutated")
	}
}
