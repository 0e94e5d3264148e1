// Package messaging defines the broker-neutral envelope used to publish
// checkout events.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"CheckoutSDK/pkg/logger"

	"github.com/google/uuid"
)

const (
	TypeSessionOutcome = "checkout.session.outcome"
)

// Envelope wraps an event with the metadata needed to route and trace it.
// Key is the partitioning key, normally the session ID.
type Envelope struct {
	EventID       string          `json:"event_id"`
	Key           string          `json:"key"`
	Type          string          `json:"type"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewEnvelope marshals payload and stamps the envelope with a fresh event ID
// and the correlation ID carried by ctx, if any.
func NewEnvelope(ctx context.Context, key, eventType string, payload any) (Envelope, error) {
	if key == "" {
		return Envelope{}, fmt.Errorf("envelope %s: empty key", eventType)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("envelope %s: %w", eventType, err)
	}

	return Envelope{
		EventID:       uuid.NewString(),
		Key:           key,
		Type:          eventType,
		CorrelationID: logger.CorrelationID(ctx),
		Payload:       data,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Publisher sends envelopes to a broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}
