package checkout

import (
	"context"

	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"
)

//go:generate mockgen -source port.go -destination mock_port.go -package checkout

type Authenticator interface {
	Authenticate(ctx context.Context, authURL, code string) (payment.AuthSession, error)
}

type CardPaymentSubmitter interface {
	SubmitCardPayment(ctx context.Context, req payment.CardPaymentRequest) (payment.Response, error)
}

// ChallengeExecutor runs a 3-D Secure challenge with the payer and blocks
// until it completes or ctx is done.
type ChallengeExecutor interface {
	Run(ctx context.Context, descriptor threeds.Descriptor) threeds.Outcome
}

// PartialAuthResolver submits the payer's partial authorization decision.
type PartialAuthResolver interface {
	Accept(ctx context.Context, descriptor partialauth.Descriptor) payment.CardPaymentResult
	Decline(ctx context.Context, descriptor partialauth.Descriptor) payment.CardPaymentResult
}

type InstalmentPlanProvider interface {
	EligiblePlans(ctx context.Context, query payment.PlanQuery) ([]payment.InstalmentPlan, error)
}

type PayerIPResolver interface {
	PayerIP(ctx context.Context, payPageURL string) (string, error)
}

// WalletConfigProvider returns nil config when Google Pay is not available.
type WalletConfigProvider interface {
	GooglePayConfig(ctx context.Context, configURL, accessToken string) (*payment.WalletConfig, error)
}

type GooglePayAcceptor interface {
	AcceptGooglePay(ctx context.Context, url, accessToken, paymentData string) error
}

type OutcomeSink interface {
	Deliver(ctx context.Context, outcome SessionOutcome) error
}
