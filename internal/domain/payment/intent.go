package payment

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Intent describes what is being paid for and where the gateway endpoints live.
// It is created once per checkout attempt and never mutated afterwards.
type Intent struct {
	Amount             decimal.Decimal `json:"amount"`
	CurrencyCode       string          `json:"currency_code" validate:"required,len=3,alpha"`
	AuthURL            string          `json:"auth_url" validate:"required,url"`
	CardPaymentURL     string          `json:"card_payment_url" validate:"required,url"`
	SelfURL            string          `json:"self_url" validate:"omitempty,url"`
	PayPageURL         string          `json:"pay_page_url" validate:"required,url"`
	GooglePayURL       string          `json:"google_pay_url,omitempty" validate:"omitempty,url"`
	GooglePayConfigURL string          `json:"google_pay_config_url,omitempty" validate:"omitempty,url"`
	AllowedCards       []string        `json:"allowed_cards,omitempty"`
	AllowedWallets     []string        `json:"allowed_wallets,omitempty"`
	OutletID           string          `json:"outlet_id,omitempty"`
	Language           string          `json:"language,omitempty"`
}

// NewIntent validates raw and returns a copy that does not share slices with it.
func NewIntent(raw Intent) (Intent, error) {
	if err := raw.Validate(); err != nil {
		return Intent{}, err
	}
	intent := raw
	intent.CurrencyCode = strings.ToUpper(raw.CurrencyCode)
	intent.AllowedCards = slices.Clone(raw.AllowedCards)
	intent.AllowedWallets = slices.Clone(raw.AllowedWallets)
	return intent, nil
}

func (i Intent) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	if !i.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidIntent)
	}
	return nil
}

// AuthCode returns the one-time authorization code carried in the pay page URL,
// or an empty string when there is none.
func (i Intent) AuthCode() string {
	u, err := url.Parse(i.PayPageURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get("code"))
}

func (i Intent) OrderAmount() OrderAmount {
	return OrderAmount{Value: i.Amount, CurrencyCode: i.CurrencyCode}
}

// SupportedCards maps the allowed card names of the intent to known brands.
// Unknown names are ignored.
func (i Intent) SupportedCards() []CardBrand {
	brands := make([]CardBrand, 0, len(i.AllowedCards))
	for _, name := range i.AllowedCards {
		brand, ok := cardBrandNames[strings.ToUpper(strings.TrimSpace(name))]
		if !ok || slices.Contains(brands, brand) {
			continue
		}
		brands = append(brands, brand)
	}
	return brands
}

type OrderAmount struct {
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currency_code"`
}

func (a OrderAmount) String() string {
	return a.Value.StringFixed(2) + " " + a.CurrencyCode
}

type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandDiners     CardBrand = "diners"
	BrandDiscover   CardBrand = "discover"
	BrandJCB        CardBrand = "jcb"
)

var cardBrandNames = map[string]CardBrand{
	"VISA":                      BrandVisa,
	"MASTERCARD":                BrandMastercard,
	"AMERICAN_EXPRESS":          BrandAmex,
	"DINERS_CLUB_INTERNATIONAL": BrandDiners,
	"DISCOVER":                  BrandDiscover,
	"JCB":                       BrandJCB,
}
