package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntent() Intent {
	return Intent{
		Amount:         decimal.RequireFromString("10.50"),
		CurrencyCode:   "aed",
		AuthURL:        "https://gateway.test/auth",
		CardPaymentURL: "https://gateway.test/card",
		PayPageURL:     "https://paypage.test/?code=abc123",
		AllowedCards:   []string{"VISA", "MASTERCARD", "UNKNOWN", "VISA"},
	}
}

func TestNewIntent(t *testing.T) {
	t.Run("normalizes and copies", func(t *testing.T) {
		raw := testIntent()

		intent, err := NewIntent(raw)
		require.NoError(t, err)

		raw.AllowedCards[0] = "JCB"
		assert.Equal(t, "AED", intent.CurrencyCode)
		assert.Equal(t, "VISA", intent.AllowedCards[0])
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		raw := testIntent()
		raw.Amount = decimal.Zero

		_, err := NewIntent(raw)
		assert.ErrorIs(t, err, ErrInvalidIntent)
	})

	t.Run("rejects missing auth url", func(t *testing.T) {
		raw := testIntent()
		raw.AuthURL = ""

		_, err := NewIntent(raw)
		assert.ErrorIs(t, err, ErrInvalidIntent)
	})
}

func TestIntent_AuthCode(t *testing.T) {
	tests := []struct {
		name       string
		payPageURL string
		want       string
	}{
		{name: "code present", payPageURL: "https://paypage.test/?code=abc123", want: "abc123"},
		{name: "code absent", payPageURL: "https://paypage.test/?foo=bar", want: ""},
		{name: "code blank", payPageURL: "https://paypage.test/?code=%20%20", want: ""},
		{name: "unparsable url", payPageURL: "://bad", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intent{PayPageURL: tt.payPageURL}.AuthCode())
		})
	}
}

func TestIntent_SupportedCards(t *testing.T) {
	assert.Equal(t, []CardBrand{BrandVisa, BrandMastercard}, testIntent().SupportedCards())
}

func TestResultOf(t *testing.T) {
	ok := ResultOf(Response{State: StateCaptured}, nil)
	assert.Equal(t, CardPaymentSuccess{Response: Response{State: StateCaptured}}, ok)

	failed := ResultOf(Response{}, ErrUnknownState)
	require.IsType(t, CardPaymentError{}, failed)
	assert.ErrorIs(t, failed.(CardPaymentError), ErrUnknownState)
}
