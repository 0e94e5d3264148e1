package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/messaging"
	"CheckoutSDK/pkg/metrics"
)

const sinkName = "kafka"

type deadLetters interface {
	PublishToDLQ(ctx context.Context, key, value []byte, cause error) error
	Close() error
}

// OutcomeSink publishes terminal session outcomes. When publishing fails and
// a dead letter publisher is set, the outcome is parked there instead.
type OutcomeSink struct {
	publisher messaging.Publisher
	dlq       deadLetters
}

var _ checkout.OutcomeSink = (*OutcomeSink)(nil)

// NewOutcomeSink accepts a nil dlq.
func NewOutcomeSink(publisher messaging.Publisher, dlq *DLQPublisher) *OutcomeSink {
	s := &OutcomeSink{publisher: publisher}
	if dlq != nil {
		s.dlq = dlq
	}
	return s
}

func (s *OutcomeSink) Deliver(ctx context.Context, outcome checkout.SessionOutcome) error {
	env, err := messaging.NewEnvelope(ctx, outcome.SessionID, messaging.TypeSessionOutcome, outcome)
	if err != nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "error").Inc()
		return err
	}

	pubErr := s.publisher.Publish(ctx, env)
	if pubErr == nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "ok").Inc()
		return nil
	}
	if s.dlq == nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "error").Inc()
		return pubErr
	}

	value, err := json.Marshal(env)
	if err != nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "error").Inc()
		return errors.Join(pubErr, err)
	}
	if err := s.dlq.PublishToDLQ(ctx, []byte(env.Key), value, pubErr); err != nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "error").Inc()
		return errors.Join(pubErr, err)
	}
	metrics.OutcomeDeliveries.WithLabelValues(sinkName, "dead_lettered").Inc()
	return fmt.Errorf("outcome dead-lettered: %w", pubErr)
}

func (s *OutcomeSink) Close() error {
	err := s.publisher.Close()
	if s.dlq != nil {
		err = errors.Join(err, s.dlq.Close())
	}
	return err
}
