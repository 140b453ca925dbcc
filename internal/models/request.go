package models

// DetectionFlags toggles individual QC checks for a request.
type DetectionFlags struct {
	Mismatches bool `json:"mismatches"`
	Duplicates bool `json:"duplicates"`
	OffScript  bool `json:"off_script"`
	Missing    bool `json:"missing"`
}

// AnalyzeRequest is the JSON body of POST /v1/analyze.
//
// Clients send either pre-split script_sentences or raw script_lines;
// when only script_lines are present the server joins and re-segments
// them. similarity_threshold and duplicate_gap_threshold override the
// configured classification and duplicate thresholds when they fall in
// (0, 1); out-of-range values fall back to the server defaults.
type AnalyzeRequest struct {
	AudioFiles            []AudioFileRef  `json:"audio_files"`
	ScriptSentences       []string        `json:"script_sentences,omitempty"`
	ScriptLines           []string        `json:"script_lines,omitempty"`
	DetectionFlags        *DetectionFlags `json:"detection_flags,omitempty"`
	DuplicateGapThreshold float64         `json:"duplicate_gap_threshold,omitempty"`
	SimilarityThreshold   float64         `json:"similarity_threshold,omitempty"`
	Language              string          `json:"language,omitempty"`
	Terminology           string          `json:"terminology,omitempty"`
	Model                 string          `json:"model,omitempty"`
}

// DuplicatesEnabled reports whether duplicate detection should run.
// Defaults to true when detection_flags is absent.
func (r *AnalyzeRequest) DuplicatesEnabled() bool {
	if r.DetectionFlags == nil {
		return true
	}
	return r.DetectionFlags.Duplicates
}

// AnalyzeResponse is the JSON body returned by POST /v1/analyze.
type AnalyzeResponse struct {
	Status  string         `json:"status"`
	Results []AnalysisItem `json:"results"`
	Summary Summary        `json:"summary"`
}

// ErrorResponse is returned for request-level failures.
type ErrorResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error"`
}
