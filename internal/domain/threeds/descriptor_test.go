package threeds

import (
	"testing"

	"CheckoutSDK/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v1Response() payment.Response {
	return payment.Response{
		State: payment.StateAwait3DS,
		Links: payment.Links{ThreeDS: &payment.Href{Href: "https://gateway.test/3ds"}},
		ThreeDS: &payment.ThreeDSOne{
			ACSURL: "https://acs.test",
			PaReq:  "pareq",
			MD:     "md",
		},
	}
}

func v2Response() payment.Response {
	return payment.Response{
		State:          payment.StateAwait3DS,
		Reference:      "pay-ref",
		OutletID:       "outlet-1",
		OrderReference: "order-ref",
		Links: payment.Links{
			ThreeDSAuthentications:   &payment.Href{Href: "https://gateway.test/3ds2/authentications"},
			ThreeDSChallengeResponse: &payment.Href{Href: "https://gateway.test/3ds2/challenge-response"},
		},
		ThreeDS2: &payment.ThreeDSTwo{
			MethodURL:         "https://acs.test/method",
			ServerTransID:     "trans-1",
			DirectoryServerID: "A000000003",
			MessageVersion:    "2.2.0",
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("builds v1 from acs data", func(t *testing.T) {
		d, err := Build(v1Response(), "https://gateway.test/order", "payment-token=abc")

		require.NoError(t, err)
		assert.Equal(t, VersionOne, d.Version)
		assert.Nil(t, d.V2)
		assert.Equal(t, "https://gateway.test/3ds", d.V1.GatewayURL)
	})

	t.Run("v1 gateway url falls back to self link", func(t *testing.T) {
		resp := v1Response()
		resp.Links.ThreeDS = nil
		resp.Links.Self = &payment.Href{Href: "https://gateway.test/payments/1/"}

		d, err := Build(resp, "", "")

		require.NoError(t, err)
		assert.Equal(t, "https://gateway.test/payments/1/3ds", d.V1.GatewayURL)
	})

	t.Run("v2 fields route to v2 even without v1 data", func(t *testing.T) {
		d, err := Build(v2Response(), "https://gateway.test/order", "payment-token=abc")

		require.NoError(t, err)
		assert.Equal(t, VersionTwo, d.Version)
		assert.Nil(t, d.V1)
		assert.Equal(t, "trans-1", d.V2.ServerTransID)
		assert.Equal(t, "https://gateway.test/3ds2/authentications", d.V2.AuthenticationURL)
		assert.Equal(t, "payment-token=abc", d.V2.PaymentCookie)
		assert.Equal(t, "outlet-1", d.V2.OutletRef)
	})

	t.Run("v2 with v1 data present still builds v2", func(t *testing.T) {
		resp := v2Response()
		resp.ThreeDS = v1Response().ThreeDS

		d, err := Build(resp, "https://gateway.test/order", "payment-token=abc")

		require.NoError(t, err)
		assert.Equal(t, VersionTwo, d.Version)
	})

	t.Run("incomplete v2 is malformed", func(t *testing.T) {
		resp := v2Response()
		resp.Links.ThreeDSAuthentications = nil

		_, err := Build(resp, "https://gateway.test/order", "payment-token=abc")

		assert.ErrorIs(t, err, ErrMalformedChallengeData)
		assert.ErrorContains(t, err, "cnp:3ds2-authentication")
	})

	t.Run("incomplete v1 names the missing fields", func(t *testing.T) {
		resp := v1Response()
		resp.ThreeDS.PaReq = ""
		resp.ThreeDS.MD = ""

		_, err := Build(resp, "", "")

		assert.ErrorIs(t, err, ErrMalformedChallengeData)
		assert.ErrorContains(t, err, "acsMd, acsPaReq")
	})

	t.Run("no challenge data at all", func(t *testing.T) {
		_, err := Build(payment.Response{State: payment.StateAwait3DS}, "", "")

		assert.ErrorIs(t, err, ErrMalformedChallengeData)
	})
}

func TestOutcomeFromResponse(t *testing.T) {
	assert.Equal(t, Approved{State: payment.StateCaptured},
		OutcomeFromResponse(payment.Response{State: payment.StateCaptured}, ""))

	assert.Equal(t, Declined{Reason: "Not authenticated"},
		OutcomeFromResponse(payment.Response{
			State:   payment.StateFailed,
			ThreeDS: &payment.ThreeDSOne{SummaryText: "Not authenticated"},
		}, ""))

	got := OutcomeFromResponse(payment.Response{
		State: payment.StateAwaitingPartialAuth,
		Links: payment.Links{PartialAuthAccept: &payment.Href{Href: "https://gateway.test/accept"}},
	}, "payment-token=abc")
	require.IsType(t, PartialAuthRequired{}, got)
	assert.Equal(t, "payment-token=abc", got.(PartialAuthRequired).Descriptor.PaymentCookie)
}

func TestDescriptor_Key(t *testing.T) {
	assert.Equal(t, "trans-1", Descriptor{Version: VersionTwo, V2: &V2{ServerTransID: "trans-1"}}.Key())
	assert.Equal(t, "md-1", Descriptor{Version: VersionOne, V1: &V1{MD: "md-1"}}.Key())
	assert.Empty(t, Descriptor{}.Key())
}
