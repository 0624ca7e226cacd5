package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/jothamO/prism-app-sub003/internal/config"
)

type ReviewQueueProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// Creates a new review queue producer and ensures topic exists. Writes are
// synchronous: an escalation that cannot be queued must surface as an error.
func NewReviewQueueProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*ReviewQueueProducer, error) {
	if cfg.ReviewQueueTopic == "" {
		return nil, fmt.Errorf("kafka review queue topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for review queue producer: %w", err)
	}
	defer conn.Close()

	err = createKafkaTopicIfNotExists(conn, cfg.ReviewQueueTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure review queue topic %s exists: %w", cfg.ReviewQueueTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.ReviewQueueTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: cfg.MaxWait,
	}

	return &ReviewQueueProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.ReviewQueueTopic,
	}, nil
}

func (p *ReviewQueueProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message value for review queue producer: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message via review queue producer",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish message to %s via review queue producer: %w", p.topic, err)
	}

	p.logger.Debug("Published message via review queue producer",
		"topic", p.topic,
		"key", key,
	)
	return nil
}

func (p *ReviewQueueProducer) Close() error {
	p.logger.Info("Closing review queue Kafka message producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close review queue kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
