// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// ServiceConfig holds service identity and listener settings.
type ServiceConfig struct {
	Principal string
	HTTPPort  string
}

// ASRConfig selects and tunes the recognition backend.
type ASRConfig struct {
	Provider      string // mock, openai, google
	Model         string // default model when requests do not pick one
	LanguageCode  string // default language hint ("" -> auto-detect)
	OpenAIAPIKey  string
	OpenAIBaseURL string // empty -> api.openai.com
	AudioEncoding string // google backend only
	SampleRateHz  int    // google backend only
}

// AnalysisConfig holds the similarity thresholds for classification and
// duplicate detection. Requests may override the minor-diff and
// duplicate thresholds per call.
type AnalysisConfig struct {
	MatchThreshold     float64
	MinorDiffThreshold float64
	DuplicateThreshold float64
	MinDuplicateLength int
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	TopicItems   string
	TopicSummary string
	Principal    string
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel    string
	MetricsAddr string
}

// Configuration is the complete service configuration.
type Configuration struct {
	Service       ServiceConfig
	ASR           ASRConfig
	Analysis      AnalysisConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment, falling back to
// defaults on missing or unparsable values.
func Load() *Configuration {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-vo-qc")

	return &Configuration{
		Service: ServiceConfig{
			Principal: principal,
			HTTPPort:  envOrDefault("HTTP_PORT", "5000"),
		},
		ASR: ASRConfig{
			Provider:      envOrDefault("ASR_PROVIDER", "mock"),
			Model:         envOrDefault("ASR_MODEL", "large-v3"),
			LanguageCode:  envOrDefault("ASR_LANGUAGE_CODE", ""),
			OpenAIAPIKey:  envOrDefault("OPENAI_API_KEY", ""),
			OpenAIBaseURL: envOrDefault("OPENAI_BASE_URL", ""),
			AudioEncoding: envOrDefault("ASR_AUDIO_ENCODING", "LINEAR16"),
			SampleRateHz:  envOrDefaultInt("ASR_SAMPLE_RATE_HZ", 16000),
		},
		Analysis: AnalysisConfig{
			MatchThreshold:     envOrDefaultFloat("ANALYSIS_MATCH_THRESHOLD", 0.99),
			MinorDiffThreshold: envOrDefaultFloat("ANALYSIS_MINOR_DIFF_THRESHOLD", 0.85),
			DuplicateThreshold: envOrDefaultFloat("ANALYSIS_DUPLICATE_THRESHOLD", 0.90),
			MinDuplicateLength: envOrDefaultInt("ANALYSIS_MIN_DUPLICATE_LENGTH", 5),
		},
		Kafka: KafkaConfig{
			Enabled:      envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:      envOrDefaultList("KAFKA_BROKERS", nil),
			TopicItems:   envOrDefault("KAFKA_TOPIC_ITEMS", "vo-qc.analysis.item"),
			TopicSummary: envOrDefault("KAFKA_TOPIC_SUMMARY", "vo-qc.analysis.summary"),
			Principal:    envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
