package models

// AnalysisItemEvent is published to the item topic, one event per
// analyzed audio file.
type AnalysisItemEvent struct {
	EventType string       `json:"eventType"`
	RequestID string       `json:"requestId"`
	Timestamp int64        `json:"timestamp"`
	Item      AnalysisItem `json:"item"`
}

// AnalysisSummaryEvent is published to the summary topic once per
// completed analyze request.
type AnalysisSummaryEvent struct {
	EventType string  `json:"eventType"`
	RequestID string  `json:"requestId"`
	Timestamp int64   `json:"timestamp"`
	Summary   Summary `json:"summary"`
}
