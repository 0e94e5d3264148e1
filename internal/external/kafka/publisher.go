package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"CheckoutSDK/internal/messaging"
	"CheckoutSDK/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

// messageWriter is the part of *kafka.Writer the publishers need.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publisher implements messaging.Publisher on a Kafka topic.
type Publisher struct {
	writer messageWriter
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{writer: newWriter(brokers, topic), topic: topic}
}

// Publish writes the envelope keyed by env.Key so all events of one session
// land on the same partition.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(env.Type)},
		},
	}
	if env.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: logger.CorrelationHeader, Value: []byte(env.CorrelationID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			slog.String("topic", p.topic),
			slog.String("key", env.Key),
			slog.Any("error", err))
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	slog.DebugContext(ctx, "Message published",
		slog.String("topic", p.topic),
		slog.String("key", env.Key),
		slog.String("event_id", env.EventID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
