package gateway

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"CheckoutSDK/pkg/metrics"
)

// RetryConfig holds configuration for retry with exponential backoff.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig returns sensible defaults for retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	}
}

// DoWithRetry executes fn with exponential backoff. Only ErrGatewayUnavailable
// is retried, and only for idempotent lookups: payment submissions never go
// through here.
func DoWithRetry(ctx context.Context, cfg RetryConfig, operation string, fn func() error) error {
	attempts := max(cfg.MaxAttempts, 1)
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !errors.Is(err, ErrGatewayUnavailable) || attempt == attempts-1 {
			break
		}

		metrics.GatewayRetries.WithLabelValues(operation).Inc()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(calculateBackoff(attempt, cfg.BaseDelay, cfg.MaxDelay)):
		}
	}

	return lastErr
}

// calculateBackoff computes exponential backoff with jitter.
func calculateBackoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	delay := float64(baseDelay) * math.Pow(2, float64(attempt))

	// ±25%
	delay += delay * 0.25 * (rand.Float64()*2 - 1)

	if delay > float64(maxDelay) {
		delay = float64(maxDelay)
	}
	return time.Duration(delay)
}
