package payment

import "github.com/shopspring/decimal"

// AuthSession is what the gateway hands out after the auth code exchange.
type AuthSession struct {
	AccessToken   string
	PaymentCookie string
	OrderURL      string
}

func (s AuthSession) Valid() bool {
	return s.AccessToken != "" && s.PaymentCookie != ""
}

// CardPaymentRequest is everything the submission client needs for one card payment.
type CardPaymentRequest struct {
	PaymentURL string
	Session    AuthSession
	Card       CardDetails
	PayerIP    string
	PlanID     string
}

type InstalmentPlan struct {
	ID                   string          `json:"id"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	Frequency            string          `json:"frequency,omitempty"`
	InstallmentAmount    decimal.Decimal `json:"installmentAmount"`
	CurrencyCode         string          `json:"currencyCode,omitempty"`
	Terms                string          `json:"termsAndConditions,omitempty"`
}

type PlanQuery struct {
	CardNumber  string
	AccessToken string
	SelfURL     string
}

// PlanSelection is the host's choice among presented plans. PayInFull submits
// the card without a plan.
type PlanSelection struct {
	PlanID    string `json:"plan_id"`
	PayInFull bool   `json:"pay_in_full"`
}

type WalletConfig struct {
	CanUseGooglePay       bool   `json:"can_use_google_pay"`
	AllowedPaymentMethods string `json:"allowed_payment_methods,omitempty"`
}
