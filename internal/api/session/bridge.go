package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/threeds"
)

var ErrChallengeAlreadyResolved = errors.New("challenge result already submitted")

const (
	MessageChallengeTimedOut  = "3-D Secure challenge timed out"
	MessageChallengeCancelled = "3-D Secure challenge cancelled"
)

type postedResult struct {
	key     string
	outcome threeds.Outcome
}

// ChallengeBridge runs a challenge by waiting for the host application to
// post its result. The descriptor reaches the host through the
// challenge_required effect. Results are tagged with the descriptor key so a
// late result for one challenge never settles the next.
type ChallengeBridge struct {
	timeout time.Duration
	posted  chan struct{}

	mu       sync.Mutex
	pending  *postedResult
	consumed map[string]struct{}
}

var _ checkout.ChallengeExecutor = (*ChallengeBridge)(nil)

func NewChallengeBridge(timeout time.Duration) *ChallengeBridge {
	return &ChallengeBridge{
		timeout:  timeout,
		posted:   make(chan struct{}, 1),
		consumed: make(map[string]struct{}),
	}
}

func (b *ChallengeBridge) Run(ctx context.Context, d threeds.Descriptor) threeds.Outcome {
	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	key := d.Key()
	for {
		if out, ok := b.take(ctx, key); ok {
			return out
		}
		select {
		case <-b.posted:
		case <-timer.C:
			slog.WarnContext(ctx, "Challenge timed out", slog.Int("version", int(d.Version)), slog.Duration("timeout", b.timeout))
			return threeds.Failed{Message: MessageChallengeTimedOut}
		case <-ctx.Done():
			return threeds.Failed{Message: MessageChallengeCancelled}
		}
	}
}

// take returns the pending result when it belongs to the challenge key.
// A result for any other challenge is dropped.
func (b *ChallengeBridge) take(ctx context.Context, key string) (threeds.Outcome, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.pending
	if p == nil {
		return nil, false
	}
	b.pending = nil
	if p.key != key {
		slog.WarnContext(ctx, "Dropping result posted for another challenge", slog.String("challenge", p.key))
		return nil, false
	}
	b.consumed[key] = struct{}{}
	return p.outcome, true
}

// Resolve hands the host's result for challenge key to the waiting Run. Only
// one result is held, and a challenge accepts a single result.
func (b *ChallengeBridge) Resolve(key string, out threeds.Outcome) error {
	b.mu.Lock()
	if _, done := b.consumed[key]; done || (b.pending != nil && b.pending.key == key) {
		b.mu.Unlock()
		return ErrChallengeAlreadyResolved
	}
	b.pending = &postedResult{key: key, outcome: out}
	b.mu.Unlock()

	select {
	case b.posted <- struct{}{}:
	default:
	}
	return nil
}
