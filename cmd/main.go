package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpapi "vo-qc-service/internal/api/http"
	"vo-qc-service/internal/app"
	"vo-qc-service/internal/config"
	"vo-qc-service/internal/events"
	"vo-qc-service/internal/observability"
	"vo-qc-service/internal/observability/logging"
	"vo-qc-service/internal/service/asr"
	"vo-qc-service/internal/service/asr/google"
	"vo-qc-service/internal/service/asr/mock"
	"vo-qc-service/internal/service/asr/openai"
	"vo-qc-service/internal/service/qc"
)

func main() {
	cfg := config.Load()

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Application startup failed")
	}
	defer application.Shutdown()

	recognizer, cleanup, err := buildRecognizer(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.ASR.Provider).Msg("Recognizer setup failed")
	}
	if cleanup != nil {
		defer cleanup()
	}
	providerLogger := logging.WithProvider(cfg.ASR.Provider)
	providerLogger.Info().Msg("Recognition backend ready")

	analyzer := qc.NewAnalyzer(recognizer, cfg.ASR.Provider)

	// Kafka publisher with separate topics for item results and summaries
	publisher := events.New(&events.Config{
		Enabled:      cfg.Kafka.Enabled,
		Brokers:      cfg.Kafka.Brokers,
		TopicItems:   cfg.Kafka.TopicItems,
		TopicSummary: cfg.Kafka.TopicSummary,
		Principal:    cfg.Kafka.Principal,
	})
	defer publisher.Close()

	// Metrics and health on a separate listener
	obsServer := observability.NewServer(cfg.Observability.MetricsAddr)
	obsServer.Start()

	handler := httpapi.NewHandler(application, analyzer, publisher, cfg)
	apiServer := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().
			Str("port", cfg.Service.HTTPPort).
			Str("provider", cfg.ASR.Provider).
			Msg("VO QC service started")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	if err := obsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Observability shutdown error")
	}
}

// buildRecognizer selects the recognition backend from configuration.
// The optional cleanup func closes backend connections on shutdown.
func buildRecognizer(cfg *config.Configuration) (asr.Recognizer, func(), error) {
	switch cfg.ASR.Provider {
	case "openai":
		r := openai.New(openai.Config{
			APIKey:  cfg.ASR.OpenAIAPIKey,
			BaseURL: cfg.ASR.OpenAIBaseURL,
			Model:   cfg.ASR.Model,
		})
		return r, nil, nil
	case "google":
		gcfg := google.DefaultConfig()
		if cfg.ASR.LanguageCode != "" {
			gcfg.LanguageCode = cfg.ASR.LanguageCode
		}
		if cfg.ASR.SampleRateHz > 0 {
			gcfg.SampleRateHz = int32(cfg.ASR.SampleRateHz)
		}
		if cfg.ASR.AudioEncoding != "" {
			gcfg.AudioEncoding = cfg.ASR.AudioEncoding
		}
		r, err := google.New(context.Background(), gcfg)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	default:
		return mock.New(), nil, nil
	}
}
