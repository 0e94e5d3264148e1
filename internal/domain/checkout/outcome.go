package checkout

import (
	"fmt"
	"time"

	"CheckoutSDK/internal/domain/payment"

	"github.com/shopspring/decimal"
)

type OutcomeKind string

const (
	OutcomeAuthorized     OutcomeKind = "AUTHORIZED"
	OutcomePurchased      OutcomeKind = "PURCHASED"
	OutcomeCaptured       OutcomeKind = "CAPTURED"
	OutcomePostAuthReview OutcomeKind = "POST_AUTH_REVIEW"
	OutcomeFailed         OutcomeKind = "FAILED"
	OutcomeGenericError   OutcomeKind = "GENERIC_ERROR"
)

const (
	MessagePaymentFailed          = "Payment failed"
	MessageGooglePayPrecondition  = "Authorization or Google Pay URL is missing"
	MessageGooglePayAcceptFailed  = "Google Pay accept failed"
	MessageCancelled              = "Payment cancelled"
	MessageChallengeDeclined      = "3-D Secure authentication declined"
	MessageChallengeNoOutcome     = "3-D Secure challenge ended without a result"
	MessageUnsupportedCardPayment = "Unsupported card payment result"
	MessageUnknownState           = "Unknown payment state"
	MessagePartialAuthDeclined    = "Partial authorization declined"
)

// Outcome is the single terminal result of a checkout session.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message,omitempty"`
}

func Succeeded(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind}
}

func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeFailed, Message: message}
}

func GenericError(message string) Outcome {
	return Outcome{Kind: OutcomeGenericError, Message: message}
}

func (o Outcome) Successful() bool {
	return o.Kind != OutcomeFailed && o.Kind != OutcomeGenericError
}

func (o Outcome) String() string {
	if o.Message == "" {
		return string(o.Kind)
	}
	return fmt.Sprintf("%s: %s", o.Kind, o.Message)
}

// outcomeForState maps the gateway states that end a session. The boolean is
// false for states that do not map to a terminal outcome on their own.
func outcomeForState(state payment.State) (Outcome, bool) {
	switch state {
	case payment.StateAuthorised:
		return Succeeded(OutcomeAuthorized), true
	case payment.StatePurchased:
		return Succeeded(OutcomePurchased), true
	case payment.StateCaptured:
		return Succeeded(OutcomeCaptured), true
	case payment.StatePostAuthReview:
		return Succeeded(OutcomePostAuthReview), true
	default:
		return Outcome{}, false
	}
}

func paymentFailed(summary string) Outcome {
	if summary == "" {
		return Failed(MessagePaymentFailed)
	}
	return Failed(MessagePaymentFailed + ": " + summary)
}

func unknownState(state payment.State) Outcome {
	return Failed(fmt.Sprintf("%s: %s", MessageUnknownState, state))
}

// SessionOutcome is what gets delivered to outcome sinks once a session ends.
type SessionOutcome struct {
	SessionID    string          `json:"session_id"`
	OutletID     string          `json:"outlet_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
	Outcome      Outcome         `json:"outcome"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
