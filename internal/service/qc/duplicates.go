package qc

import (
	"fmt"
	"unicode/utf8"

	"vo-qc-service/internal/models"
)

// DuplicateDetector flags near-identical text repeated within one
// transcript or across transcripts of the same request.
type DuplicateDetector struct {
	scorer    func(a, b string) float64
	threshold float64 // similarity strictly above -> duplicate
	minSrcLen int     // minimum source sentence length in runes
}

// NewDuplicateDetector creates a detector with the given similarity
// scorer and thresholds.
func NewDuplicateDetector(scorer func(a, b string) float64, threshold float64, minSrcLen int) *DuplicateDetector {
	return &DuplicateDetector{scorer: scorer, threshold: threshold, minSrcLen: minSrcLen}
}

// Detect returns a duplicate-annotated copy of items; the input slice
// is left untouched. Two passes run in index order:
//
// Intra-item: within each item, every later sentence whose transcribed
// text repeats an earlier one (similarity strictly above the threshold)
// is tagged with duplicate metadata referencing the earlier sentence's
// 1-based position. The earliest qualifying predecessor wins; an
// existing tag is never overwritten. Sentences shorter than the
// minimum length are skipped as sources.
//
// Inter-item: a later item whose full transcription repeats an earlier
// clean item's is reclassified DUPLICATE with a DUPLICATE issue. Only
// items still classified NONE participate, and earlier items are never
// reclassified by later ones, so duplicate status is asymmetric even
// though similarity is symmetric.
func (d *DuplicateDetector) Detect(items []models.AnalysisItem) []models.AnalysisItem {
	out := cloneItems(items)

	for k := range out {
		d.detectWithin(&out[k])
	}

	for i := 0; i < len(out); i++ {
		if out[i].ErrorType != models.ErrorNone {
			continue
		}
		for j := i + 1; j < len(out); j++ {
			if out[j].ErrorType != models.ErrorNone {
				continue
			}

			similarity := d.scorer(out[i].TranscribedText, out[j].TranscribedText)
			if similarity <= d.threshold {
				continue
			}

			ref := i
			sim := Round3(similarity)
			out[j].ErrorType = models.ErrorDuplicate
			out[j].DuplicateOf = fmt.Sprintf("Item %d", i+1)
			out[j].Issues = append(out[j].Issues, models.Issue{
				Type:           models.IssueDuplicate,
				ReferenceIndex: &ref,
				Similarity:     &sim,
				Note:           fmt.Sprintf("Duplicate/same text as item %d", i+1),
			})
		}
	}

	return out
}

func (d *DuplicateDetector) detectWithin(item *models.AnalysisItem) {
	alignments := item.SentenceAlignments

	for i := 0; i < len(alignments); i++ {
		src := alignments[i].Transcribed
		if src == "" || utf8.RuneCountInString(src) < d.minSrcLen {
			continue
		}

		for j := i + 1; j < len(alignments); j++ {
			if alignments[j].Transcribed == "" || alignments[j].DuplicateInfo != nil {
				continue
			}

			similarity := d.scorer(src, alignments[j].Transcribed)
			if similarity <= d.threshold {
				continue
			}

			alignments[j].DuplicateInfo = &models.DuplicateInfo{
				IsDuplicate:       true,
				ReferenceSentence: i + 1,
				Similarity:        Round3(similarity),
				Note:              fmt.Sprintf("Duplicate of sentence %d (within same audio)", i+1),
			}
		}
	}
}

// cloneItems deep-copies the parts of each item the detector mutates.
func cloneItems(items []models.AnalysisItem) []models.AnalysisItem {
	out := make([]models.AnalysisItem, len(items))
	copy(out, items)
	for k := range out {
		if items[k].SentenceAlignments != nil {
			out[k].SentenceAlignments = make([]models.Alignment, len(items[k].SentenceAlignments))
			copy(out[k].SentenceAlignments, items[k].SentenceAlignments)
		}
		if items[k].Issues != nil {
			out[k].Issues = make([]models.Issue, len(items[k].Issues))
			copy(out[k].Issues, items[k].Issues)
		}
	}
	return out
}
