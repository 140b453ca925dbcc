package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear relevant env vars
	envVars := []string{
		"SERVICE_PRINCIPAL", "HTTP_PORT", "LOG_LEVEL", "METRICS_ADDR",
		"ASR_PROVIDER", "ASR_MODEL", "ASR_LANGUAGE_CODE",
		"ASR_SAMPLE_RATE_HZ", "ASR_AUDIO_ENCODING",
		"ANALYSIS_MATCH_THRESHOLD", "ANALYSIS_MINOR_DIFF_THRESHOLD",
		"ANALYSIS_DUPLICATE_THRESHOLD", "ANALYSIS_MIN_DUPLICATE_LENGTH",
		"KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_PRINCIPAL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg := Load()

	// Service defaults
	if cfg.Service.Principal != "svc-vo-qc" {
		t.Errorf("expected default principal 'svc-vo-qc', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "5000" {
		t.Errorf("expected default port '5000', got %s", cfg.Service.HTTPPort)
	}

	// ASR defaults
	if cfg.ASR.Provider != "mock" {
		t.Errorf("expected default ASR provider 'mock', got %s", cfg.ASR.Provider)
	}
	if cfg.ASR.Model != "large-v3" {
		t.Errorf("expected default model 'large-v3', got %s", cfg.ASR.Model)
	}
	if cfg.ASR.LanguageCode != "" {
		t.Errorf("expected default language '' (auto-detect), got %s", cfg.ASR.LanguageCode)
	}
	if cfg.ASR.SampleRateHz != 16000 {
		t.Errorf("expected default sample rate 16000, got %d", cfg.ASR.SampleRateHz)
	}
	if cfg.ASR.AudioEncoding != "LINEAR16" {
		t.Errorf("expected default encoding 'LINEAR16', got %s", cfg.ASR.AudioEncoding)
	}

	// Analysis threshold defaults
	if cfg.Analysis.MatchThreshold != 0.99 {
		t.Errorf("expected default match threshold 0.99, got %v", cfg.Analysis.MatchThreshold)
	}
	if cfg.Analysis.MinorDiffThreshold != 0.85 {
		t.Errorf("expected default minor diff threshold 0.85, got %v", cfg.Analysis.MinorDiffThreshold)
	}
	if cfg.Analysis.DuplicateThreshold != 0.90 {
		t.Errorf("expected default duplicate threshold 0.90, got %v", cfg.Analysis.DuplicateThreshold)
	}
	if cfg.Analysis.MinDuplicateLength != 5 {
		t.Errorf("expected default min duplicate length 5, got %d", cfg.Analysis.MinDuplicateLength)
	}

	// Observability defaults
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Observability.LogLevel)
	}
	if cfg.Observability.MetricsAddr != ":9090" {
		t.Errorf("expected default metrics addr ':9090', got %s", cfg.Observability.MetricsAddr)
	}

	// Kafka defaults
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled by default")
	}
	if cfg.Kafka.TopicItems != "vo-qc.analysis.item" {
		t.Errorf("expected default item topic 'vo-qc.analysis.item', got %s", cfg.Kafka.TopicItems)
	}
	if cfg.Kafka.TopicSummary != "vo-qc.analysis.summary" {
		t.Errorf("expected default summary topic 'vo-qc.analysis.summary', got %s", cfg.Kafka.TopicSummary)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SERVICE_PRINCIPAL", "custom-principal")
	os.Setenv("HTTP_PORT", "9999")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("ASR_PROVIDER", "openai")
	os.Setenv("ASR_MODEL", "whisper-1")
	os.Setenv("ASR_LANGUAGE_CODE", "uk")
	os.Setenv("ASR_SAMPLE_RATE_HZ", "8000")
	os.Setenv("ASR_AUDIO_ENCODING", "MULAW")
	os.Setenv("ANALYSIS_MINOR_DIFF_THRESHOLD", "0.8")
	os.Setenv("ANALYSIS_DUPLICATE_THRESHOLD", "0.95")
	os.Setenv("ANALYSIS_MIN_DUPLICATE_LENGTH", "10")
	os.Setenv("KAFKA_ENABLED", "true")
	os.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")

	defer func() {
		os.Unsetenv("SERVICE_PRINCIPAL")
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("ASR_PROVIDER")
		os.Unsetenv("ASR_MODEL")
		os.Unsetenv("ASR_LANGUAGE_CODE")
		os.Unsetenv("ASR_SAMPLE_RATE_HZ")
		os.Unsetenv("ASR_AUDIO_ENCODING")
		os.Unsetenv("ANALYSIS_MINOR_DIFF_THRESHOLD")
		os.Unsetenv("ANALYSIS_DUPLICATE_THRESHOLD")
		os.Unsetenv("ANALYSIS_MIN_DUPLICATE_LENGTH")
		os.Unsetenv("KAFKA_ENABLED")
		os.Unsetenv("KAFKA_BROKERS")
	}()

	cfg := Load()

	if cfg.Service.Principal != "custom-principal" {
		t.Errorf("expected principal 'custom-principal', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "9999" {
		t.Errorf("expected port '9999', got %s", cfg.Service.HTTPPort)
	}
	if cfg.ASR.Provider != "openai" {
		t.Errorf("expected ASR provider 'openai', got %s", cfg.ASR.Provider)
	}
	if cfg.ASR.Model != "whisper-1" {
		t.Errorf("expected model 'whisper-1', got %s", cfg.ASR.Model)
	}
	if cfg.ASR.LanguageCode != "uk" {
		t.Errorf("expected language 'uk', got %s", cfg.ASR.LanguageCode)
	}
	if cfg.ASR.SampleRateHz != 8000 {
		t.Errorf("expected sample rate 8000, got %d", cfg.ASR.SampleRateHz)
	}
	if cfg.ASR.AudioEncoding != "MULAW" {
		t.Errorf("expected encoding 'MULAW', got %s", cfg.ASR.AudioEncoding)
	}
	if cfg.Analysis.MinorDiffThreshold != 0.8 {
		t.Errorf("expected minor diff threshold 0.8, got %v", cfg.Analysis.MinorDiffThreshold)
	}
	if cfg.Analysis.DuplicateThreshold != 0.95 {
		t.Errorf("expected duplicate threshold 0.95, got %v", cfg.Analysis.DuplicateThreshold)
	}
	if cfg.Analysis.MinDuplicateLength != 10 {
		t.Errorf("expected min duplicate length 10, got %d", cfg.Analysis.MinDuplicateLength)
	}
	if !cfg.Kafka.Enabled {
		t.Error("expected Kafka enabled")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "broker-1:9092" || cfg.Kafka.Brokers[1] != "broker-2:9092" {
		t.Errorf("expected two trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Observability.LogLevel)
	}
}

func TestLoad_InvalidValues_FallbackToDefaults(t *testing.T) {
	os.Setenv("ASR_SAMPLE_RATE_HZ", "not-a-number")
	os.Setenv("ANALYSIS_MATCH_THRESHOLD", "invalid")
	os.Setenv("ANALYSIS_MIN_DUPLICATE_LENGTH", "invalid")
	os.Setenv("KAFKA_ENABLED", "invalid")

	defer func() {
		os.Unsetenv("ASR_SAMPLE_RATE_HZ")
		os.Unsetenv("ANALYSIS_MATCH_THRESHOLD")
		os.Unsetenv("ANALYSIS_MIN_DUPLICATE_LENGTH")
		os.Unsetenv("KAFKA_ENABLED")
	}()

	cfg := Load()

	if cfg.ASR.SampleRateHz != 16000 {
		t.Errorf("expected default sample rate on invalid input, got %d", cfg.ASR.SampleRateHz)
	}
	if cfg.Analysis.MatchThreshold != 0.99 {
		t.Errorf("expected default match threshold on invalid input, got %v", cfg.Analysis.MatchThreshold)
	}
	if cfg.Analysis.MinDuplicateLength != 5 {
		t.Errorf("expected default min duplicate length on invalid input, got %d", cfg.Analysis.MinDuplicateLength)
	}
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled on invalid input")
	}
}

func TestLoad_KafkaPrincipal_FallsBackToServicePrincipal(t *testing.T) {
	os.Setenv("SERVICE_PRINCIPAL", "my-service")
	os.Unsetenv("KAFKA_PRINCIPAL")

	defer os.Unsetenv("SERVICE_PRINCIPAL")

	cfg := Load()

	if cfg.Kafka.Principal != "my-service" {
		t.Errorf("expected Kafka principal to fall back to service principal, got %s", cfg.Kafka.Principal)
	}
}

func TestEnvOrDefaultBool(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		def      bool
		expected bool
	}{
		{"true string", "true", false, true},
		{"false string", "false", true, false},
		{"1", "1", false, true},
		{"0", "0", true, false},
		{"TRUE uppercase", "TRUE", false, true},
		{"invalid", "invalid", true, true},
		{"empty", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_VAR"
			if tt.envValue != "" {
				os.Setenv(key, tt.envValue)
			} else {
				os.Unsetenv(key)
			}
			defer os.Unsetenv(key)

			got := envOrDefaultBool(key, tt.def)
			if got != tt.expected {
				t.Errorf("envOrDefaultBool(%s, %v) = %v, want %v", tt.envValue, tt.def, got, tt.expected)
			}
		})
	}
}
