// Package session keeps the live checkout sessions of the host service.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/pkg/logger"
	"CheckoutSDK/pkg/metrics"
)

var ErrNotFound = errors.New("checkout session not found")

type Options struct {
	Settings         checkout.Settings
	ChallengeTimeout time.Duration
	// Retention keeps finished sessions readable for this long.
	Retention time.Duration
	// IdleTimeout cancels sessions that have not finished by then. Zero disables it.
	IdleTimeout time.Duration
}

// Session pairs an orchestrator with the bridge its challenges wait on.
type Session struct {
	*checkout.Orchestrator
	Challenges *ChallengeBridge
	CreatedAt  time.Time
}

type Registry struct {
	deps checkout.Deps
	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session

	stopped   chan struct{}
	closeOnce sync.Once
}

// NewRegistry takes the shared ports; Challenges is set per session.
func NewRegistry(deps checkout.Deps, opts Options) *Registry {
	return &Registry{
		deps:     deps,
		opts:     opts,
		sessions: make(map[string]*Session),
		stopped:  make(chan struct{}),
	}
}

func (r *Registry) Create(ctx context.Context, intent payment.Intent) (*Session, error) {
	bridge := NewChallengeBridge(r.opts.ChallengeTimeout)
	deps := r.deps
	deps.Challenges = bridge

	o, err := checkout.New(intent, deps, r.opts.Settings)
	if err != nil {
		return nil, err
	}
	s := &Session{Orchestrator: o, Challenges: bridge, CreatedAt: time.Now()}

	r.mu.Lock()
	r.sessions[o.ID()] = s
	r.mu.Unlock()
	metrics.ActiveSessions.Inc()

	go r.watch(logger.WithSessionID(context.WithoutCancel(ctx), o.ID()), s)

	slog.InfoContext(ctx, "Checkout session created",
		slog.String("session_id", o.ID()),
		slog.String("amount", o.Intent().OrderAmount().String()))
	return s, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CancelAll cancels every unfinished session, used on shutdown.
func (r *Registry) CancelAll(ctx context.Context) {
	r.mu.RLock()
	live := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		live = append(live, s)
	}
	r.mu.RUnlock()

	for _, s := range live {
		if err := s.Cancel(ctx); err != nil && !errors.Is(err, checkout.ErrSessionFinished) {
			slog.WarnContext(ctx, "Cancel on shutdown failed", slog.String("session_id", s.ID()), slog.Any("error", err))
		}
	}
}

// Close cancels every unfinished session and evicts the finished ones
// without waiting out Retention.
func (r *Registry) Close(ctx context.Context) {
	r.CancelAll(ctx)
	r.closeOnce.Do(func() { close(r.stopped) })
}

// watch cancels a session that idles past IdleTimeout and evicts it once it
// has been finished for Retention.
func (r *Registry) watch(ctx context.Context, s *Session) {
	var idle <-chan time.Time
	if r.opts.IdleTimeout > 0 {
		t := time.NewTimer(r.opts.IdleTimeout)
		defer t.Stop()
		idle = t.C
	}

	select {
	case <-s.Done():
		metrics.ActiveSessions.Dec()
	case <-r.stopped:
		_ = s.Cancel(ctx)
		<-s.Done()
		metrics.ActiveSessions.Dec()
	case <-idle:
		slog.InfoContext(ctx, "Cancelling idle checkout session")
		_ = s.Cancel(ctx)
		<-s.Done()
		metrics.ActiveSessions.Dec()
	}

	if r.opts.Retention > 0 {
		t := time.NewTimer(r.opts.Retention)
		select {
		case <-t.C:
		case <-r.stopped:
			t.Stop()
		}
	}
	r.mu.Lock()
	delete(r.sessions, s.ID())
	r.mu.Unlock()
	slog.DebugContext(ctx, "Checkout session evicted")
}
