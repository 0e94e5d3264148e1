package session

import (
	"context"
	"testing"
	"time"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testIntent() payment.Intent {
	return payment.Intent{
		Amount:         decimal.RequireFromString("10.00"),
		CurrencyCode:   "aed",
		AuthURL:        "https://gateway.test/auth",
		CardPaymentURL: "https://gateway.test/orders/1/payments/card",
		PayPageURL:     "https://paypage.test/?code=abc",
	}
}

func testDeps(t *testing.T) checkout.Deps {
	ctrl := gomock.NewController(t)
	return checkout.Deps{
		Authenticator: checkout.NewMockAuthenticator(ctrl),
		Submitter:     checkout.NewMockCardPaymentSubmitter(ctrl),
		PartialAuth:   checkout.NewMockPartialAuthResolver(ctrl),
	}
}

func TestChallengeBridge(t *testing.T) {
	first := threeds.Descriptor{Version: threeds.VersionTwo, V2: &threeds.V2{ServerTransID: "trans-1"}}
	second := threeds.Descriptor{Version: threeds.VersionTwo, V2: &threeds.V2{ServerTransID: "trans-2"}}

	t.Run("returns posted result", func(t *testing.T) {
		b := NewChallengeBridge(time.Minute)
		require.NoError(t, b.Resolve("trans-1", threeds.Approved{State: payment.StateCaptured}))

		got := b.Run(context.Background(), first)

		assert.Equal(t, threeds.Approved{State: payment.StateCaptured}, got)
	})

	t.Run("waits for a result posted later", func(t *testing.T) {
		b := NewChallengeBridge(time.Minute)
		go func() {
			time.Sleep(10 * time.Millisecond)
			_ = b.Resolve("trans-1", threeds.Declined{})
		}()

		got := b.Run(context.Background(), first)

		assert.Equal(t, threeds.Declined{}, got)
	})

	t.Run("holds a single result", func(t *testing.T) {
		b := NewChallengeBridge(time.Minute)
		require.NoError(t, b.Resolve("trans-1", threeds.Declined{}))

		assert.ErrorIs(t, b.Resolve("trans-1", threeds.Declined{}), ErrChallengeAlreadyResolved)
	})

	t.Run("duplicate result does not settle the next challenge", func(t *testing.T) {
		b := NewChallengeBridge(20 * time.Millisecond)
		require.NoError(t, b.Resolve("trans-1", threeds.Failed{Message: "first"}))
		require.Equal(t, threeds.Failed{Message: "first"}, b.Run(context.Background(), first))

		// given a repeated post for the challenge that already settled
		assert.ErrorIs(t, b.Resolve("trans-1", threeds.Failed{Message: "stale"}), ErrChallengeAlreadyResolved)

		// then the next challenge still waits for its own result
		got := b.Run(context.Background(), second)
		assert.Equal(t, threeds.Failed{Message: MessageChallengeTimedOut}, got)
	})

	t.Run("drops a result posted for another challenge", func(t *testing.T) {
		b := NewChallengeBridge(time.Minute)
		require.NoError(t, b.Resolve("trans-1", threeds.Approved{State: payment.StateCaptured}))
		go func() {
			time.Sleep(10 * time.Millisecond)
			_ = b.Resolve("trans-2", threeds.Declined{})
		}()

		got := b.Run(context.Background(), second)

		assert.Equal(t, threeds.Declined{}, got)
	})

	t.Run("fails on timeout", func(t *testing.T) {
		b := NewChallengeBridge(10 * time.Millisecond)

		got := b.Run(context.Background(), threeds.Descriptor{Version: threeds.VersionOne})

		assert.Equal(t, threeds.Failed{Message: MessageChallengeTimedOut}, got)
	})

	t.Run("fails on cancellation", func(t *testing.T) {
		b := NewChallengeBridge(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got := b.Run(ctx, threeds.Descriptor{})

		assert.Equal(t, threeds.Failed{Message: MessageChallengeCancelled}, got)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("create and get", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{Settings: checkout.DefaultSettings(), ChallengeTimeout: time.Minute, Retention: time.Hour})

		s, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)

		got, err := r.Get(s.ID())
		require.NoError(t, err)
		assert.Same(t, s, got)
		assert.Equal(t, checkout.PhaseIdle, got.State().Phase)
		assert.Equal(t, "AED", got.Intent().CurrencyCode)
	})

	t.Run("rejects invalid intent", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{ChallengeTimeout: time.Minute})
		intent := testIntent()
		intent.Amount = decimal.Zero

		_, err := r.Create(context.Background(), intent)

		assert.ErrorIs(t, err, payment.ErrInvalidIntent)
		assert.Zero(t, r.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{})

		_, err := r.Get("nope")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("evicts finished session", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{ChallengeTimeout: time.Minute})
		s, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)

		require.NoError(t, s.Cancel(context.Background()))

		assert.Eventually(t, func() bool {
			_, err := r.Get(s.ID())
			return err != nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("cancels idle session", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{ChallengeTimeout: time.Minute, IdleTimeout: 10 * time.Millisecond, Retention: time.Hour})
		s, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)

		select {
		case <-s.Done():
		case <-time.After(time.Second):
			t.Fatal("idle session was not cancelled")
		}
		out, ok := s.Outcome()
		require.True(t, ok)
		assert.Equal(t, checkout.Failed(checkout.MessageCancelled), out)
	})

	t.Run("cancel all", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{ChallengeTimeout: time.Minute, Retention: time.Hour})
		a, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)
		b, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)
		require.NoError(t, b.Cancel(context.Background()))

		r.CancelAll(context.Background())

		assert.True(t, a.State().Terminal())
		assert.True(t, b.State().Terminal())
	})

	t.Run("close evicts without waiting out retention", func(t *testing.T) {
		r := NewRegistry(testDeps(t), Options{ChallengeTimeout: time.Minute, Retention: time.Hour})
		s, err := r.Create(context.Background(), testIntent())
		require.NoError(t, err)

		r.Close(context.Background())

		assert.True(t, s.State().Terminal())
		assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	})
}
