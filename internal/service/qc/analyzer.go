package qc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vo-qc-service/internal/models"
	"vo-qc-service/internal/observability/logging"
	"vo-qc-service/internal/observability/metrics"
	"vo-qc-service/internal/service/align"
	"vo-qc-service/internal/service/asr"
	"vo-qc-service/internal/service/textnorm"
)

// Request carries the inputs for one analysis run, after transport-level
// parsing and validation.
type Request struct {
	Files            []models.AudioFileRef
	ScriptSentences  []string
	Language         string // empty or "auto" -> backend auto-detect
	Terminology      string // opaque vocabulary hint for the recognizer
	Model            string // recognizer model selection, backend-specific
	Thresholds       Thresholds
	DetectDuplicates bool
}

// Analyzer runs the full QC pipeline for a batch of audio files. The
// engine is stateless: every request is processed from its own inputs,
// items strictly in input order. Recognition is the dominant cost and
// is invoked one file at a time.
type Analyzer struct {
	recognizer asr.Recognizer
	provider   string
	strategy   align.Strategy
	scorer     textnorm.Scorer
	metrics    *metrics.Metrics
}

// NewAnalyzer creates an analyzer backed by the given recognizer.
// provider is only used as a metrics label.
func NewAnalyzer(recognizer asr.Recognizer, provider string) *Analyzer {
	return &Analyzer{
		recognizer: recognizer,
		provider:   provider,
		strategy:   align.BestMatch{},
		scorer:     textnorm.Similarity,
		metrics:    metrics.DefaultMetrics,
	}
}

// SetStrategy swaps the alignment strategy (BestMatch by default).
func (a *Analyzer) SetStrategy(s align.Strategy) {
	if s != nil {
		a.strategy = s
	}
}

// Analyze processes every file in order and returns the item list plus
// the summary. A failure on one item (missing file, recognition error)
// degrades that item only; the batch always completes.
func (a *Analyzer) Analyze(ctx context.Context, req Request) ([]models.AnalysisItem, models.Summary) {
	logger := logging.WithComponent("analyzer")
	start := time.Now()

	scriptText := strings.Join(req.ScriptSentences, " ")
	classifier := NewClassifier(a.scorer, req.Thresholds)
	aligner := align.New(a.scorer, a.strategy, req.Thresholds.AlignThresholds())

	items := make([]models.AnalysisItem, 0, len(req.Files))
	for idx, file := range req.Files {
		items = append(items, a.analyzeItem(ctx, idx, file, req, scriptText, classifier, aligner))
	}

	if req.DetectDuplicates {
		detector := NewDuplicateDetector(a.scorer, req.Thresholds.Duplicate, req.Thresholds.MinDuplicateLen)
		items = detector.Detect(items)
	}

	summary := models.Summarize(items)

	for _, item := range items {
		a.metrics.RecordItem(string(item.ErrorType), item.Similarity)
	}
	a.metrics.RecordAnalysis(time.Since(start).Seconds())

	logger.Info().
		Int("items", summary.Total).
		Int("errors", summary.Errors).
		Int("duplicates", summary.Duplicates).
		Dur("duration", time.Since(start)).
		Msg("Analysis completed")

	return items, summary
}

func (a *Analyzer) analyzeItem(
	ctx context.Context,
	idx int,
	file models.AudioFileRef,
	req Request,
	scriptText string,
	classifier *Classifier,
	aligner *align.Aligner,
) models.AnalysisItem {
	item := models.AnalysisItem{
		Index:    idx,
		GUID:     file.GUID,
		Filename: filepath.Base(file.Path),
		Issues:   []models.Issue{},
	}
	if item.GUID == "" {
		item.GUID = uuid.NewString()
	}

	itemLogger := logging.WithItem(item.GUID, item.Filename)

	if _, err := os.Stat(file.Path); err != nil {
		itemLogger.Warn().Str("path", file.Path).Msg("Audio file not found")
		item.ErrorType = models.ErrorFileNotFound
		item.Error = "Audio file not found: " + file.Path
		return item
	}

	asrStart := time.Now()
	result, err := a.recognizer.Transcribe(ctx, file.Path, asr.Options{
		Language:    req.Language,
		Model:       req.Model,
		Terminology: req.Terminology,
	})
	a.metrics.RecordASRLatency(a.provider, time.Since(asrStart).Seconds())

	if err != nil || result == nil {
		itemLogger.Error().Err(err).Msg("Transcription failed")
		a.metrics.RecordASRError(a.provider)
		item.ErrorType = models.ErrorTranscription
		item.Error = "Transcription failed"
		return item
	}

	transcribedText := strings.TrimSpace(result.Text)
	detectedLanguage := result.Language
	if detectedLanguage == "" {
		detectedLanguage = "unknown"
	}

	// Transcribed sentences come from the recognizer's own segments,
	// which carry accurate timestamps, not from re-splitting the text.
	transcribed := make([]string, 0, len(result.Segments))
	timings := make([]models.SegmentTiming, 0, len(result.Segments))
	for _, seg := range result.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		transcribed = append(transcribed, text)
		timings = append(timings, models.SegmentTiming{
			Start:    seg.Start,
			End:      seg.End,
			Duration: seg.End - seg.Start,
		})
	}

	itemLogger.Debug().
		Int("scriptSentences", len(req.ScriptSentences)).
		Int("transcribedSentences", len(transcribed)).
		Str("detectedLanguage", detectedLanguage).
		Msg("Aligning sentences")

	alignments := aligner.Align(req.ScriptSentences, transcribed, timings)
	overall := AggregateSimilarity(alignments)
	errorType := classifier.ClassifyText(scriptText, transcribedText)

	item.TranscribedText = transcribedText
	item.ScriptText = scriptText
	item.DetectedLanguage = detectedLanguage
	item.ErrorType = errorType
	item.Similarity = Round3(overall)
	item.Confidence = defaultConfidence
	item.SentenceCount = len(alignments)
	item.SentenceAlignments = alignments
	item.Issues = classifier.Issues(alignments, errorType, overall)

	return item
}

// The recognition backend does not report a usable utterance-level
// confidence for every provider, so items carry a fixed placeholder.
const defaultConfidence = 0.5
