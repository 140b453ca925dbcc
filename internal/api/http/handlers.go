package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"vo-qc-service/internal/app"
	"vo-qc-service/internal/config"
	"vo-qc-service/internal/events"
	"vo-qc-service/internal/models"
	"vo-qc-service/internal/observability/logging"
	"vo-qc-service/internal/schema"
	"vo-qc-service/internal/service/qc"
	"vo-qc-service/internal/service/textnorm"
)

// Handler holds the dependencies for all HTTP endpoints.
type Handler struct {
	App       *app.Application
	Analyzer  *qc.Analyzer
	Publisher *events.Publisher
	Validator *schema.Validator
	Cfg       *config.Configuration
}

// NewHandler wires the HTTP handlers to the QC engine.
func NewHandler(application *app.Application, analyzer *qc.Analyzer, publisher *events.Publisher, cfg *config.Configuration) *Handler {
	return &Handler{
		App:       application,
		Analyzer:  analyzer,
		Publisher: publisher,
		Validator: schema.New(),
		Cfg:       cfg,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"provider": h.Cfg.ASR.Provider,
	})
}

// Info reports service identity, version and backend selection.
func (h *Handler) Info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":      "vo-qc-service",
		"version":      app.Version,
		"asr_provider": h.Cfg.ASR.Provider,
		"asr_model":    h.Cfg.ASR.Model,
		"started_at":   h.App.StartupTime.Format(time.RFC3339),
		"uptime":       time.Since(h.App.StartupTime).String(),
		"endpoints": map[string]string{
			"health":  "GET /healthz",
			"info":    "GET /v1/info",
			"analyze": "POST /v1/analyze",
		},
	})
}

// Analyze runs the QC pipeline over a batch of audio files.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())
	logger := logging.WithRequest(requestID)

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Malformed analyze request body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	if err := h.Validator.ValidateAnalyzeRequest(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid analyze request")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	thresholds := qc.Thresholds{
		Match:           h.Cfg.Analysis.MatchThreshold,
		MinorDiff:       h.Cfg.Analysis.MinorDiffThreshold,
		Duplicate:       h.Cfg.Analysis.DuplicateThreshold,
		MinDuplicateLen: h.Cfg.Analysis.MinDuplicateLength,
	}.WithOverrides(req.SimilarityThreshold, req.DuplicateGapThreshold)

	language := req.Language
	if language == "" {
		language = h.Cfg.ASR.LanguageCode
	}
	model := req.Model
	if model == "" {
		model = h.Cfg.ASR.Model
	}

	qcReq := qc.Request{
		Files:            req.AudioFiles,
		ScriptSentences:  scriptSentences(&req),
		Language:         language,
		Terminology:      req.Terminology,
		Model:            model,
		Thresholds:       thresholds,
		DetectDuplicates: req.DuplicatesEnabled(),
	}

	logger.Info().
		Int("files", len(qcReq.Files)).
		Int("scriptSentences", len(qcReq.ScriptSentences)).
		Bool("duplicates", qcReq.DetectDuplicates).
		Msg("Analyze request accepted")

	items, summary := h.Analyzer.Analyze(r.Context(), qcReq)

	h.publishResults(r, requestID, items, summary)

	writeJSON(w, http.StatusOK, models.AnalyzeResponse{
		Status:  "success",
		Results: items,
		Summary: summary,
	})
}

// publishResults emits one event per item plus a summary event. Publish
// failures are logged and never affect the HTTP response.
func (h *Handler) publishResults(r *http.Request, requestID string, items []models.AnalysisItem, summary models.Summary) {
	if h.Publisher == nil {
		return
	}
	logger := logging.WithRequest(requestID)
	now := time.Now().UnixMilli()

	for _, item := range items {
		event := models.AnalysisItemEvent{
			EventType: h.Cfg.Kafka.TopicItems,
			RequestID: requestID,
			Timestamp: now,
			Item:      item,
		}
		if err := h.Publisher.PublishItem(r.Context(), item.GUID, event); err != nil {
			logger.Error().Err(err).Str("guid", item.GUID).Msg("Failed to publish item event")
		}
	}

	event := models.AnalysisSummaryEvent{
		EventType: h.Cfg.Kafka.TopicSummary,
		RequestID: requestID,
		Timestamp: now,
		Summary:   summary,
	}
	if err := h.Publisher.PublishSummary(r.Context(), requestID, event); err != nil {
		logger.Error().Err(err).Msg("Failed to publish summary event")
	}
}

// scriptSentences returns the expected script split into sentences.
// Pre-split sentences win; raw lines are joined and re-segmented.
func scriptSentences(req *models.AnalyzeRequest) []string {
	out := make([]string, 0, len(req.ScriptSentences))
	for _, s := range req.ScriptSentences {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) > 0 {
		return out
	}
	return textnorm.SplitSentences(strings.Join(req.ScriptLines, " "))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
