//go:build !integration

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/messaging"
	"CheckoutSDK/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestOutcomeSink_Deliver(t *testing.T) {
	t.Run("publishes envelope keyed by session", func(t *testing.T) {
		w := &fakeWriter{}
		sink := NewOutcomeSink(&Publisher{writer: w, topic: "outcomes"}, nil)
		ctx := logger.WithCorrelationID(context.Background(), "corr-1")

		require.NoError(t, sink.Deliver(ctx, sessionOutcome()))

		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, "sess-1", string(msg.Key))
		assert.Equal(t, messaging.TypeSessionOutcome, header(msg, headerEventType))
		assert.Equal(t, "corr-1", header(msg, logger.CorrelationHeader))

		var env messaging.Envelope
		require.NoError(t, json.Unmarshal(msg.Value, &env))
		assert.Equal(t, "corr-1", env.CorrelationID)
		assert.NotEmpty(t, env.EventID)

		var got checkout.SessionOutcome
		require.NoError(t, env.Decode(&got))
		assert.Equal(t, "sess-1", got.SessionID)
		assert.Equal(t, checkout.OutcomeCaptured, got.Outcome.Kind)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("100")))
	})

	t.Run("returns publish error without dlq", func(t *testing.T) {
		boom := errors.New("broker down")
		sink := NewOutcomeSink(&Publisher{writer: &fakeWriter{err: boom}, topic: "outcomes"}, nil)

		err := sink.Deliver(context.Background(), sessionOutcome())

		assert.ErrorIs(t, err, boom)
	})

	t.Run("parks failed outcome in dlq", func(t *testing.T) {
		boom := errors.New("broker down")
		dlqWriter := &fakeWriter{}
		sink := NewOutcomeSink(
			&Publisher{writer: &fakeWriter{err: boom}, topic: "outcomes"},
			&DLQPublisher{writer: dlqWriter, topic: "outcomes-dlq"},
		)

		err := sink.Deliver(context.Background(), sessionOutcome())

		assert.ErrorIs(t, err, boom)
		require.Len(t, dlqWriter.msgs, 1)
		assert.Equal(t, "sess-1", string(dlqWriter.msgs[0].Key))
		assert.Equal(t, "broker down", header(dlqWriter.msgs[0], "error"))
		assert.NotEmpty(t, header(dlqWriter.msgs[0], "failed_at"))
	})

	t.Run("rejects outcome without session id", func(t *testing.T) {
		w := &fakeWriter{}
		sink := NewOutcomeSink(&Publisher{writer: w, topic: "outcomes"}, nil)
		out := sessionOutcome()
		out.SessionID = ""

		assert.Error(t, sink.Deliver(context.Background(), out))
		assert.Empty(t, w.msgs)
	})
}

func TestOutcomeSink_Close(t *testing.T) {
	w, dlq := &fakeWriter{}, &fakeWriter{}
	sink := NewOutcomeSink(&Publisher{writer: w}, &DLQPublisher{writer: dlq})

	require.NoError(t, sink.Close())

	assert.True(t, w.closed)
	assert.True(t, dlq.closed)
}
