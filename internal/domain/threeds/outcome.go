package threeds

import (
	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
)

// Outcome is the result of running a challenge: Approved, Declined, Failed or
// PartialAuthRequired.
type Outcome interface {
	isOutcome()
}

// Approved carries the payment state the gateway settled on after the challenge.
type Approved struct {
	State payment.State
}

type Declined struct {
	Reason string
}

type Failed struct {
	Message string
}

type PartialAuthRequired struct {
	Descriptor partialauth.Descriptor
}

func (Approved) isOutcome()            {}
func (Declined) isOutcome()            {}
func (Failed) isOutcome()              {}
func (PartialAuthRequired) isOutcome() {}

// OutcomeFromResponse maps the gateway response that closes a challenge.
func OutcomeFromResponse(resp payment.Response, paymentCookie string) Outcome {
	switch resp.State {
	case payment.StateAwaitingPartialAuth:
		return PartialAuthRequired{Descriptor: partialauth.FromResponse(resp, paymentCookie)}
	case payment.StateFailed:
		return Declined{Reason: resp.SummaryText()}
	default:
		return Approved{State: resp.State}
	}
}
