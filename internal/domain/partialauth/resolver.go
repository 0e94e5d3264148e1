package partialauth

import (
	"context"
	"log/slog"

	"CheckoutSDK/internal/domain/payment"
)

//go:generate mockgen -source resolver.go -destination mock_resolver.go -package partialauth

// LinkFollower submits a partial authorization link with the payment cookie.
type LinkFollower interface {
	FollowPartialAuthLink(ctx context.Context, link, paymentCookie string) (payment.Response, error)
}

type Resolver struct {
	follower LinkFollower
}

func NewResolver(follower LinkFollower) *Resolver {
	return &Resolver{follower: follower}
}

// Accept follows the accept link. The result goes through the regular card
// payment dispatch.
func (r *Resolver) Accept(ctx context.Context, d Descriptor) payment.CardPaymentResult {
	if err := d.Validate(); err != nil {
		return payment.CardPaymentError{Err: err}
	}
	return payment.ResultOf(r.follower.FollowPartialAuthLink(ctx, d.AcceptURL, d.PaymentCookie))
}

// Decline follows the decline link and always ends in ErrPartialAuthDeclined,
// whatever the gateway answers.
func (r *Resolver) Decline(ctx context.Context, d Descriptor) payment.CardPaymentResult {
	if err := d.Validate(); err != nil {
		return payment.CardPaymentError{Err: err}
	}
	resp, err := r.follower.FollowPartialAuthLink(ctx, d.DeclineURL, d.PaymentCookie)
	if err != nil {
		slog.WarnContext(ctx, "Partial authorization decline call failed", slog.Any("error", err))
	} else {
		slog.InfoContext(ctx, "Partial authorization declined", slog.String("state", string(resp.State)))
	}
	return payment.CardPaymentError{Err: ErrPartialAuthDeclined}
}
