package checkout

import (
	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"
)

// Effect is a one-shot instruction to the host. Effects are delivered at most
// once and only to subscribers active when they are emitted.
type Effect interface {
	Name() string
}

type ShowInstalmentPlans struct {
	Plans       []payment.InstalmentPlan `json:"plans"`
	OrderAmount payment.OrderAmount      `json:"order_amount"`
}

type ChallengeRequired struct {
	Descriptor threeds.Descriptor `json:"descriptor"`
}

type PartialAuthRequired struct {
	Descriptor partialauth.Descriptor `json:"descriptor"`
}

type CancelConfirmationRequired struct{}

type Finished struct {
	Outcome Outcome `json:"outcome"`
}

func (ShowInstalmentPlans) Name() string        { return "show_instalment_plans" }
func (ChallengeRequired) Name() string          { return "challenge_required" }
func (PartialAuthRequired) Name() string        { return "partial_auth_required" }
func (CancelConfirmationRequired) Name() string { return "cancel_confirmation_required" }
func (Finished) Name() string                   { return "finished" }
