package partialauth

import (
	"context"
	"errors"
	"testing"

	"CheckoutSDK/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolver(t *testing.T) (*Resolver, *MockLinkFollower) {
	follower := NewMockLinkFollower(gomock.NewController(t))
	return NewResolver(follower), follower
}

func validDescriptor() Descriptor {
	return Descriptor{
		AcceptURL:        "https://gateway.test/accept",
		DeclineURL:       "https://gateway.test/decline",
		AuthorizedAmount: decimal.NewFromInt(50),
		RequestedAmount:  decimal.NewFromInt(100),
		CurrencyCode:     "AED",
		PaymentCookie:    "payment-token=abc",
	}
}

func TestFromResponse(t *testing.T) {
	resp := payment.Response{
		State: payment.StateAwaitingPartialAuth,
		Links: payment.Links{
			PartialAuthAccept:  &payment.Href{Href: "https://gateway.test/accept"},
			PartialAuthDecline: &payment.Href{Href: "https://gateway.test/decline"},
		},
		Amount: &payment.Amount{CurrencyCode: "AED", Value: decimal.NewFromInt(100)},
		AuthResponse: &payment.AuthResponse{
			AmountAuthorized: &payment.Amount{CurrencyCode: "AED", Value: decimal.NewFromInt(50)},
		},
	}

	d := FromResponse(resp, "payment-token=abc")

	require.NoError(t, d.Validate())
	assert.Equal(t, "https://gateway.test/accept", d.AcceptURL)
	assert.True(t, d.AuthorizedAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, d.RequestedAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "AED", d.CurrencyCode)
}

func TestDescriptor_Validate(t *testing.T) {
	d := validDescriptor()
	d.DeclineURL = ""
	assert.ErrorIs(t, d.Validate(), ErrMalformedDescriptor)

	assert.ErrorIs(t, Descriptor{}.Validate(), ErrMalformedDescriptor)
}

func TestResolver_Accept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mock     func(f *MockLinkFollower)
		expected payment.CardPaymentResult
	}{
		{
			name: "follow-up response is returned for dispatch",
			mock: func(f *MockLinkFollower) {
				f.EXPECT().FollowPartialAuthLink(gomock.Any(), "https://gateway.test/accept", "payment-token=abc").
					Return(payment.Response{State: payment.StateCaptured}, nil)
			},
			expected: payment.CardPaymentSuccess{Response: payment.Response{State: payment.StateCaptured}},
		},
		{
			name: "network error becomes a result error",
			mock: func(f *MockLinkFollower) {
				f.EXPECT().FollowPartialAuthLink(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Response{}, errors.New("connection reset"))
			},
			expected: payment.CardPaymentError{Err: errors.New("connection reset")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// given
			r, follower := resolver(t)
			tt.mock(follower)

			// when
			got := r.Accept(context.Background(), validDescriptor())

			// then
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolver_Decline(t *testing.T) {
	t.Parallel()

	amounts := []struct {
		authorized int64
		requested  int64
	}{
		{authorized: 1, requested: 100},
		{authorized: 99, requested: 100},
		{authorized: 100, requested: 100},
	}

	for _, a := range amounts {
		for _, callErr := range []error{nil, errors.New("timeout")} {
			// given
			r, follower := resolver(t)
			d := validDescriptor()
			d.AuthorizedAmount = decimal.NewFromInt(a.authorized)
			d.RequestedAmount = decimal.NewFromInt(a.requested)
			follower.EXPECT().FollowPartialAuthLink(gomock.Any(), d.DeclineURL, d.PaymentCookie).
				Return(payment.Response{State: payment.StateCaptured}, callErr)

			// when
			got := r.Decline(context.Background(), d)

			// then
			require.IsType(t, payment.CardPaymentError{}, got)
			assert.ErrorIs(t, got.(payment.CardPaymentError).Err, ErrPartialAuthDeclined)
		}
	}
}

func TestResolver_MalformedDescriptorMakesNoCall(t *testing.T) {
	r, _ := resolver(t)

	got := r.Accept(context.Background(), Descriptor{PaymentCookie: "payment-token=abc"})

	require.IsType(t, payment.CardPaymentError{}, got)
	assert.ErrorIs(t, got.(payment.CardPaymentError).Err, ErrMalformedDescriptor)
}
