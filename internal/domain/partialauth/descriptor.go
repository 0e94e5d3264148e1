package partialauth

import (
	"errors"
	"fmt"

	"CheckoutSDK/internal/domain/payment"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedDescriptor is returned when a partial authorization response lacks its links
	ErrMalformedDescriptor = errors.New("malformed partial authorization data")

	// ErrPartialAuthDeclined is the result of declining a partial authorization
	ErrPartialAuthDeclined = errors.New("partial authorization declined")
)

// Descriptor is what the payer decides on: the issuer approved less than was requested.
type Descriptor struct {
	AcceptURL        string          `json:"accept_url"`
	DeclineURL       string          `json:"decline_url"`
	AuthorizedAmount decimal.Decimal `json:"authorized_amount"`
	RequestedAmount  decimal.Decimal `json:"requested_amount"`
	CurrencyCode     string          `json:"currency_code"`
	PaymentCookie    string          `json:"-"`
}

// FromResponse reads the descriptor out of an AWAITING_PARTIAL_AUTH_APPROVAL response.
func FromResponse(resp payment.Response, paymentCookie string) Descriptor {
	d := Descriptor{
		AcceptURL:     resp.Links.PartialAuthAccept.URL(),
		DeclineURL:    resp.Links.PartialAuthDecline.URL(),
		PaymentCookie: paymentCookie,
	}
	if resp.Amount != nil {
		d.RequestedAmount = resp.Amount.Value
		d.CurrencyCode = resp.Amount.CurrencyCode
	}
	if resp.AuthResponse != nil && resp.AuthResponse.AmountAuthorized != nil {
		d.AuthorizedAmount = resp.AuthResponse.AmountAuthorized.Value
		if d.CurrencyCode == "" {
			d.CurrencyCode = resp.AuthResponse.AmountAuthorized.CurrencyCode
		}
	}
	return d
}

func (d Descriptor) Validate() error {
	switch {
	case d.AcceptURL == "" && d.DeclineURL == "":
		return fmt.Errorf("%w: accept and decline links missing", ErrMalformedDescriptor)
	case d.AcceptURL == "":
		return fmt.Errorf("%w: accept link missing", ErrMalformedDescriptor)
	case d.DeclineURL == "":
		return fmt.Errorf("%w: decline link missing", ErrMalformedDescriptor)
	}
	return nil
}
