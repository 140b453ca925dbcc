// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"vo-qc-service/internal/observability/metrics"
)

// Publisher publishes QC result events to separate Kafka topics: one
// event per analyzed item, and one summary per completed request.
type Publisher struct {
	writerItems   *kafka.Writer
	writerSummary *kafka.Writer
	principal     string
	topicItems    string
	topicSummary  string
	enabled       bool
	metrics       *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers      []string
	TopicItems   string
	TopicSummary string
	Principal    string
	Enabled      bool
}

// New creates a new Kafka event publisher with separate topics for item
// results and request summaries.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	// Handle nil config case
	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:    cfg.Principal,
			topicItems:   cfg.TopicItems,
			topicSummary: cfg.TopicSummary,
			enabled:      false,
			metrics:      m,
		}
	}

	// Create a custom dialer with longer timeouts for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	// Writer for per-item results
	writerItems := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicItems,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	// Writer for request summaries
	writerSummary := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicSummary,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicItems", cfg.TopicItems).
		Str("topicSummary", cfg.TopicSummary).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerItems:   writerItems,
		writerSummary: writerSummary,
		principal:     cfg.Principal,
		topicItems:    cfg.TopicItems,
		topicSummary:  cfg.TopicSummary,
		enabled:       true,
		metrics:       m,
	}
}

// PublishItem publishes one analyzed item to the item topic.
func (p *Publisher) PublishItem(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerItems, p.topicItems, "item", key, event)
}

// PublishSummary publishes a request summary to the summary topic.
func (p *Publisher) PublishSummary(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerSummary, p.topicSummary, "summary", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	// Log the event
	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	// Publish to Kafka
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerItems != nil {
		if e := p.writerItems.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing items writer")
			err = e
		}
	}
	if p.writerSummary != nil {
		if e := p.writerSummary.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing summary writer")
			err = e
		}
	}
	return err
}
