package checkout

import (
	"context"
	"errors"
	"fmt"
)

// ErrSinkFull is returned by ChannelSink when its outcome was already taken.
var ErrSinkFull = errors.New("outcome sink already holds an outcome")

// ChannelSink hands the outcome over on a single-slot channel.
type ChannelSink struct {
	ch chan SessionOutcome
}

func NewChannelSink() *ChannelSink {
	return &ChannelSink{ch: make(chan SessionOutcome, 1)}
}

func (s *ChannelSink) Deliver(_ context.Context, outcome SessionOutcome) error {
	select {
	case s.ch <- outcome:
		return nil
	default:
		return ErrSinkFull
	}
}

func (s *ChannelSink) C() <-chan SessionOutcome {
	return s.ch
}

// SinkFunc adapts a function to OutcomeSink.
type SinkFunc func(ctx context.Context, outcome SessionOutcome) error

func (f SinkFunc) Deliver(ctx context.Context, outcome SessionOutcome) error {
	return f(ctx, outcome)
}

// FanOut delivers to every sink and joins their errors.
type FanOut []OutcomeSink

func (f FanOut) Deliver(ctx context.Context, outcome SessionOutcome) error {
	var errs []error
	for i, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Deliver(ctx, outcome); err != nil {
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

type nopSink struct{}

func (nopSink) Deliver(context.Context, SessionOutcome) error { return nil }
