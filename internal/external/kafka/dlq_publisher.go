package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// DLQPublisher parks messages that could not be delivered to their topic,
// with the failure recorded in headers.
type DLQPublisher struct {
	writer messageWriter
	topic  string
}

func NewDLQPublisher(brokers []string, topic string) *DLQPublisher {
	return &DLQPublisher{writer: newWriter(brokers, topic), topic: topic}
}

func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, cause error) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(cause.Error())},
			{Key: "failed_at", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish to DLQ",
			slog.String("topic", p.topic),
			slog.String("key", string(key)),
			slog.Any("error", err),
			slog.Any("cause", cause))
		return fmt.Errorf("publish to dlq %s: %w", p.topic, err)
	}

	slog.WarnContext(ctx, "Message sent to DLQ",
		slog.String("topic", p.topic),
		slog.String("key", string(key)),
		slog.Any("cause", cause))
	return nil
}

func (p *DLQPublisher) Close() error {
	return p.writer.Close()
}
