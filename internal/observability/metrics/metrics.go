// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vo_qc"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    prometheus.Counter
	AnalysesFailed   prometheus.Counter
	AnalysisDuration prometheus.Histogram

	// Item metrics
	ItemsTotal     *prometheus.CounterVec
	ItemSimilarity prometheus.Histogram

	// Recognition backend metrics
	ASRLatency *prometheus.HistogramVec
	ASRErrors  *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		// Analysis metrics
		AnalysesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of analyze requests processed",
		}),
		AnalysesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_failed_total",
			Help:      "Total number of analyze requests that failed at the request level",
		}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of complete analyze requests in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}),

		// Item metrics
		ItemsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Total number of audio items analyzed",
		}, []string{"error_type"}),
		ItemSimilarity: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "item_similarity",
			Help:      "Aggregate script similarity per analyzed item",
			Buckets:   []float64{0.1, 0.25, 0.5, 0.75, 0.85, 0.9, 0.95, 0.99, 1},
		}),

		// Recognition backend metrics
		ASRLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "asr_latency_seconds",
			Help:      "Speech recognition latency per audio file in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"provider"}),
		ASRErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asr_errors_total",
			Help:      "Total number of recognition backend errors",
		}, []string{"provider"}),

		// Kafka publish metrics
		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordAnalysis records a completed analyze request.
func (m *Metrics) RecordAnalysis(durationSeconds float64) {
	m.AnalysesTotal.Inc()
	m.AnalysisDuration.Observe(durationSeconds)
}

// RecordAnalysisFailed records a request-level analysis failure.
func (m *Metrics) RecordAnalysisFailed() {
	m.AnalysesFailed.Inc()
}

// RecordItem records one analyzed item with its final error type.
func (m *Metrics) RecordItem(errorType string, similarity float64) {
	m.ItemsTotal.WithLabelValues(errorType).Inc()
	m.ItemSimilarity.Observe(similarity)
}

// RecordASRLatency records one recognition call's latency.
func (m *Metrics) RecordASRLatency(provider string, latencySeconds float64) {
	m.ASRLatency.WithLabelValues(provider).Observe(latencySeconds)
}

// RecordASRError records a recognition backend error.
func (m *Metrics) RecordASRError(provider string) {
	m.ASRErrors.WithLabelValues(provider).Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
