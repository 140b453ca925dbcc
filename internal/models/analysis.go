// Package models defines the data structures for voice-over QC analysis.
package models

// ErrorType classifies the outcome of analyzing one audio item.
type ErrorType string

const (
	// ErrorNone - transcription matches the script.
	ErrorNone ErrorType = "NONE"
	// ErrorMinorDiff - transcription differs slightly from the script.
	ErrorMinorDiff ErrorType = "MINOR_DIFF"
	// ErrorMismatch - transcription does not match the script.
	ErrorMismatch ErrorType = "MISMATCH"
	// ErrorDuplicate - item repeats the content of an earlier item.
	ErrorDuplicate ErrorType = "DUPLICATE"
	// ErrorFileNotFound - referenced audio file is unreachable.
	ErrorFileNotFound ErrorType = "FILE_NOT_FOUND"
	// ErrorTranscription - recognition backend failed or returned nothing.
	ErrorTranscription ErrorType = "TRANSCRIPTION_ERROR"
)

// Issue type tags. Sentence-level tags carry a sentence index, file-level
// tags apply to the whole item. File access and recognition failures are
// reported through the item's error_type and error fields, not as issues.
const (
	IssueSentenceMismatch  = "SENTENCE_MISMATCH"
	IssueSentenceMinorDiff = "SENTENCE_MINOR_DIFF"
	IssueDuplicate         = "DUPLICATE"
	IssueMismatch          = "MISMATCH"
	IssueMinorDiff         = "MINOR_DIFF"
)

// Alignment status tags for a single script sentence.
const (
	StatusMatch     = "match"
	StatusMinorDiff = "minor_diff"
	StatusMismatch  = "mismatch"
)

// AudioFileRef identifies one audio file in an analyze request.
type AudioFileRef struct {
	Path  string `json:"path"`
	GUID  string `json:"guid,omitempty"`
	Index int    `json:"index"`
}

// SegmentTiming carries the time span of one recognized segment, in seconds.
type SegmentTiming struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// DuplicateInfo marks a sentence as a near-repeat of an earlier sentence
// within the same audio file. ReferenceSentence is 1-based.
type DuplicateInfo struct {
	IsDuplicate       bool    `json:"is_duplicate"`
	ReferenceSentence int     `json:"reference_sentence"`
	Similarity        float64 `json:"similarity"`
	Note              string  `json:"note"`
}

// Alignment pairs one script sentence with its best-matching transcribed
// sentence. A transcribed sentence may serve as the best match for more
// than one script sentence.
type Alignment struct {
	Script        string         `json:"script"`
	Transcribed   string         `json:"transcribed"`
	Similarity    float64        `json:"similarity"`
	Status        string         `json:"status"`
	StartTime     float64        `json:"start_time"`
	EndTime       float64        `json:"end_time"`
	Duration      float64        `json:"duration"`
	DuplicateInfo *DuplicateInfo `json:"duplicate_info,omitempty"`
}

// Issue is a single structured finding attached to an analysis item.
type Issue struct {
	Type                string   `json:"type"`
	SentenceIndex       *int     `json:"sentence_index,omitempty"`
	ReferenceIndex      *int     `json:"reference_index,omitempty"`
	ScriptSentence      string   `json:"script_sentence,omitempty"`
	TranscribedSentence string   `json:"transcribed_sentence,omitempty"`
	Similarity          *float64 `json:"similarity,omitempty"`
	Note                string   `json:"note"`
}

// AnalysisItem is the complete QC result for one audio file.
type AnalysisItem struct {
	Index              int         `json:"index"`
	GUID               string      `json:"guid"`
	Filename           string      `json:"filename"`
	TranscribedText    string      `json:"transcribed_text,omitempty"`
	ScriptText         string      `json:"script_text,omitempty"`
	DetectedLanguage   string      `json:"detected_language,omitempty"`
	ErrorType          ErrorType   `json:"error_type"`
	Similarity         float64     `json:"similarity"`
	Confidence         float64     `json:"confidence"`
	SentenceCount      int         `json:"sentence_count"`
	SentenceAlignments []Alignment `json:"sentence_alignments"`
	Issues             []Issue     `json:"issues"`
	DuplicateOf        string      `json:"duplicate_of,omitempty"`
	Error              string      `json:"error,omitempty"`
}

// Summary aggregates error counts over all items of one analyze request.
type Summary struct {
	Total      int `json:"total"`
	Errors     int `json:"errors"`
	Mismatches int `json:"mismatches"`
	Duplicates int `json:"duplicates"`
	MinorDiffs int `json:"minor_diffs"`
}

// Summarize computes the summary in a single pass over the item list.
func Summarize(items []AnalysisItem) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch item.ErrorType {
		case ErrorNone:
		case ErrorMismatch:
			s.Mismatches++
			s.Errors++
		case ErrorDuplicate:
			s.Duplicates++
			s.Errors++
		case ErrorMinorDiff:
			s.MinorDiffs++
			s.Errors++
		default:
			s.Errors++
		}
	}
	return s
}
