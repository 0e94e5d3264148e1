package checkout

import (
	"slices"

	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"
)

type Phase string

const (
	PhaseIdle                        Phase = "IDLE"
	PhaseAuthorizing                 Phase = "AUTHORIZING"
	PhaseAuthorized                  Phase = "AUTHORIZED"
	PhaseSubmitting                  Phase = "SUBMITTING"
	PhasePresentingInstalmentPlans   Phase = "PRESENTING_INSTALMENT_PLANS"
	PhaseAwaitingChallenge           Phase = "AWAITING_CHALLENGE"
	PhaseAwaitingPartialAuthDecision Phase = "AWAITING_PARTIAL_AUTH_DECISION"
	PhaseTerminal                    Phase = "TERMINAL"
)

func (p Phase) CanMoveTo(next Phase) bool {
	switch p {
	case PhaseIdle:
		return slices.Contains([]Phase{PhaseAuthorizing, PhaseTerminal}, next)
	case PhaseAuthorizing:
		return slices.Contains([]Phase{PhaseAuthorized, PhaseTerminal}, next)
	case PhaseAuthorized:
		return slices.Contains([]Phase{PhaseSubmitting, PhaseTerminal}, next)
	case PhaseSubmitting:
		return slices.Contains([]Phase{
			PhasePresentingInstalmentPlans,
			PhaseAwaitingChallenge,
			PhaseAwaitingPartialAuthDecision,
			PhaseTerminal,
		}, next)
	case PhasePresentingInstalmentPlans, PhaseAwaitingPartialAuthDecision:
		return slices.Contains([]Phase{PhaseSubmitting, PhaseTerminal}, next)
	case PhaseAwaitingChallenge:
		return slices.Contains([]Phase{PhaseAwaitingPartialAuthDecision, PhaseTerminal}, next)
	default:
		return false
	}
}

// State is a consistent snapshot of a checkout session as shown to the host.
type State struct {
	Phase          Phase                    `json:"phase"`
	SupportedCards []payment.CardBrand      `json:"supported_cards,omitempty"`
	OrderAmount    *payment.OrderAmount     `json:"order_amount,omitempty"`
	ShowWallets    bool                     `json:"show_wallets"`
	WalletConfig   *payment.WalletConfig    `json:"wallet_config,omitempty"`
	Plans          []payment.InstalmentPlan `json:"plans,omitempty"`
	Challenge      *threeds.Descriptor      `json:"challenge,omitempty"`
	PartialAuth    *partialauth.Descriptor  `json:"partial_auth,omitempty"`
	Outcome        *Outcome                 `json:"outcome,omitempty"`

	// Session is held from AUTHORIZED until the terminal outcome.
	Session *payment.AuthSession `json:"-"`
}

func (s State) Terminal() bool {
	return s.Phase == PhaseTerminal
}
