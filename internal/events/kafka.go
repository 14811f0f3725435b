package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher sends events to a Kafka topic keyed by session id, so one
// session's events stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
}

// NewKafkaPublisher creates a producer for cfg.Topic
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            3,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
		BatchTimeout:           50 * time.Millisecond,
	}

	logger.Info("Kafka publisher created", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return &KafkaPublisher{writer: writer, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("type", event.Type),
			zap.String("session_id", event.SessionID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.logger.Debug("Event published", zap.String("type", event.Type))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NewPublisher picks Kafka when brokers are configured and the log otherwise
func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(cfg, logger)
}
