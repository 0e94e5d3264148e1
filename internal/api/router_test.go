package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"CheckoutSDK/internal/api/handlers"
	"CheckoutSDK/internal/api/session"
	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/pkg/health"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway plays the payment gateway for every port the service wires.
type fakeGateway struct {
	mu         sync.Mutex
	submitResp payment.Response
	followResp payment.Response
	submitted  []payment.CardPaymentRequest
	followed   []string
	accepted   []string
}

func (g *fakeGateway) Authenticate(context.Context, string, string) (payment.AuthSession, error) {
	return payment.AuthSession{
		AccessToken:   "access",
		PaymentCookie: "payment-token=cookie",
		OrderURL:      "https://gateway.test/orders/1",
	}, nil
}

func (g *fakeGateway) SubmitCardPayment(_ context.Context, req payment.CardPaymentRequest) (payment.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submitted = append(g.submitted, req)
	return g.submitResp, nil
}

func (g *fakeGateway) FollowPartialAuthLink(_ context.Context, link, _ string) (payment.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.followed = append(g.followed, link)
	return g.followResp, nil
}

func (g *fakeGateway) EligiblePlans(context.Context, payment.PlanQuery) ([]payment.InstalmentPlan, error) {
	return nil, nil
}

func (g *fakeGateway) PayerIP(context.Context, string) (string, error) {
	return "203.0.113.7", nil
}

func (g *fakeGateway) GooglePayConfig(context.Context, string, string) (*payment.WalletConfig, error) {
	return nil, nil
}

func (g *fakeGateway) AcceptGooglePay(_ context.Context, _, _, paymentData string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accepted = append(g.accepted, paymentData)
	return nil
}

func (g *fakeGateway) submissions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.submitted)
}

type testService struct {
	engine  *gin.Engine
	gateway *fakeGateway
	sink    *checkout.ChannelSink
}

func newTestService(t *testing.T) *testService {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := &fakeGateway{submitResp: payment.Response{State: payment.StateCaptured}}
	sink := checkout.NewChannelSink()
	registry := session.NewRegistry(checkout.Deps{
		Authenticator: gw,
		Submitter:     gw,
		PartialAuth:   partialauth.NewResolver(gw),
		Plans:         gw,
		PayerIP:       gw,
		Wallets:       gw,
		GooglePay:     gw,
		Sink:          sink,
	}, session.Options{
		Settings:         checkout.DefaultSettings(),
		ChallengeTimeout: time.Minute,
		Retention:        time.Minute,
	})

	engine := NewGinEngine()
	NewRouter(handlers.NewSessionHandler(registry, 50*time.Millisecond), nil, health.NewRegistry()).SetUp(engine)
	return &testService{engine: engine, gateway: gw, sink: sink}
}

type sessionBody struct {
	ID    string         `json:"id"`
	State checkout.State `json:"state"`
}

func (s *testService) do(t *testing.T, method, path, body string) (int, sessionBody) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)

	var out sessionBody
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

const intentJSON = `{
	"amount": "100.00",
	"currency_code": "AED",
	"auth_url": "https://gateway.test/auth",
	"card_payment_url": "https://gateway.test/orders/1/payments/card",
	"pay_page_url": "https://paypage.test/?code=abc123",
	"google_pay_url": "https://gateway.test/orders/1/google-pay",
	"allowed_cards": ["VISA"],
	"outlet_id": "outlet-1"
}`

const cardJSON = `{"pan":"4242 4242 4242 4242","expiry":"12/30","cvv":"123","cardholder_name":"Jane Doe"}`

func (s *testService) authorized(t *testing.T) string {
	t.Helper()
	code, created := s.do(t, http.MethodPost, "/sessions", intentJSON)
	require.Equal(t, http.StatusCreated, code)

	code, body := s.do(t, http.MethodPost, "/sessions/"+created.ID+"/authorize", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, checkout.PhaseAuthorized, body.State.Phase)
	return created.ID
}

func TestCreateSession(t *testing.T) {
	svc := newTestService(t)

	t.Run("starts idle", func(t *testing.T) {
		code, body := svc.do(t, http.MethodPost, "/sessions", intentJSON)

		assert.Equal(t, http.StatusCreated, code)
		assert.NotEmpty(t, body.ID)
		assert.Equal(t, checkout.PhaseIdle, body.State.Phase)
	})

	t.Run("rejects invalid intent", func(t *testing.T) {
		code, _ := svc.do(t, http.MethodPost, "/sessions", `{"amount":"0","currency_code":"AED"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		code, _ := svc.do(t, http.MethodPost, "/sessions", `{`)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown session", func(t *testing.T) {
		code, _ := svc.do(t, http.MethodGet, "/sessions/missing", "")

		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestCardPayment(t *testing.T) {
	t.Run("captured card ends the session", func(t *testing.T) {
		svc := newTestService(t)
		id := svc.authorized(t)

		code, body := svc.do(t, http.MethodPost, "/sessions/"+id+"/card", cardJSON)

		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, checkout.PhaseTerminal, body.State.Phase)
		require.NotNil(t, body.State.Outcome)
		assert.Equal(t, checkout.OutcomeCaptured, body.State.Outcome.Kind)
		assert.Equal(t, "4242424242424242", svc.gateway.submitted[0].Card.PAN)
		assert.Equal(t, "203.0.113.7", svc.gateway.submitted[0].PayerIP)

		select {
		case out := <-svc.sink.C():
			assert.Equal(t, id, out.SessionID)
			assert.Equal(t, checkout.OutcomeCaptured, out.Outcome.Kind)
		case <-time.After(time.Second):
			t.Fatal("outcome not delivered")
		}
	})

	t.Run("invalid card is rejected without a call", func(t *testing.T) {
		svc := newTestService(t)
		id := svc.authorized(t)

		code, _ := svc.do(t, http.MethodPost, "/sessions/"+id+"/card",
			`{"pan":"4242424242424241","expiry":"12/30","cvv":"123","cardholder_name":"Jane Doe"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Zero(t, svc.gateway.submissions())
	})

	t.Run("card before authorize conflicts", func(t *testing.T) {
		svc := newTestService(t)
		_, created := svc.do(t, http.MethodPost, "/sessions", intentJSON)

		code, _ := svc.do(t, http.MethodPost, "/sessions/"+created.ID+"/card", cardJSON)

		assert.Equal(t, http.StatusConflict, code)
	})
}

func TestChallenge(t *testing.T) {
	svc := newTestService(t)
	svc.gateway.submitResp = payment.Response{
		State: payment.StateAwait3DS,
		Links: payment.Links{ThreeDSAuthentications: &payment.Href{Href: "https://gateway.test/3ds2/auth"}},
		ThreeDS2: &payment.ThreeDSTwo{
			ServerTransID:  "trans-1",
			MessageVersion: "2.2.0",
		},
	}
	id := svc.authorized(t)

	code, _ := svc.do(t, http.MethodPost, "/sessions/"+id+"/challenge", `{"status":"failed"}`)
	assert.Equal(t, http.StatusConflict, code, "no challenge pending yet")

	code, _ = svc.do(t, http.MethodPost, "/sessions/"+id+"/card", cardJSON)
	assert.Equal(t, http.StatusAccepted, code)

	require.Eventually(t, func() bool {
		_, body := svc.do(t, http.MethodGet, "/sessions/"+id, "")
		return body.State.Phase == checkout.PhaseAwaitingChallenge
	}, time.Second, 10*time.Millisecond)

	_, body := svc.do(t, http.MethodGet, "/sessions/"+id, "")
	require.NotNil(t, body.State.Challenge)
	require.NotNil(t, body.State.Challenge.V2)
	assert.Equal(t, "trans-1", body.State.Challenge.V2.ServerTransID)

	code, body = svc.do(t, http.MethodPost, "/sessions/"+id+"/challenge",
		`{"status":"completed","response":{"state":"PURCHASED"}}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, checkout.PhaseTerminal, body.State.Phase)
	require.NotNil(t, body.State.Outcome)
	assert.Equal(t, checkout.OutcomePurchased, body.State.Outcome.Kind)
}

func TestPartialAuth(t *testing.T) {
	svc := newTestService(t)
	svc.gateway.submitResp = payment.Response{
		State: payment.StateAwaitingPartialAuth,
		Links: payment.Links{
			PartialAuthAccept:  &payment.Href{Href: "https://gateway.test/partial/accept"},
			PartialAuthDecline: &payment.Href{Href: "https://gateway.test/partial/decline"},
		},
	}
	svc.gateway.followResp = payment.Response{State: payment.StateFailed}
	id := svc.authorized(t)

	code, body := svc.do(t, http.MethodPost, "/sessions/"+id+"/card", cardJSON)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, checkout.PhaseAwaitingPartialAuthDecision, body.State.Phase)

	code, _ = svc.do(t, http.MethodPost, "/sessions/"+id+"/partial-auth", `{"decision":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = svc.do(t, http.MethodPost, "/sessions/"+id+"/partial-auth", `{"decision":"decline"}`)

	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.State.Outcome)
	assert.Equal(t, checkout.Failed(checkout.MessagePartialAuthDeclined), *body.State.Outcome)
	assert.Equal(t, []string{"https://gateway.test/partial/decline"}, svc.gateway.followed)
}

func TestGooglePay(t *testing.T) {
	t.Run("before authorize fails the session", func(t *testing.T) {
		svc := newTestService(t)
		_, created := svc.do(t, http.MethodPost, "/sessions", intentJSON)

		code, body := svc.do(t, http.MethodPost, "/sessions/"+created.ID+"/google-pay", `{"payment_data":{"token":"x"}}`)

		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, body.State.Outcome)
		assert.Equal(t, checkout.Failed(checkout.MessageGooglePayPrecondition), *body.State.Outcome)
		assert.Empty(t, svc.gateway.accepted)
	})

	t.Run("accepted after authorize", func(t *testing.T) {
		svc := newTestService(t)
		id := svc.authorized(t)

		code, body := svc.do(t, http.MethodPost, "/sessions/"+id+"/google-pay", `{"payment_data":{"token":"x"}}`)

		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, checkout.OutcomeCaptured, body.State.Outcome.Kind)
		assert.Equal(t, []string{`{"token":"x"}`}, svc.gateway.accepted)
	})
}

func TestCancel(t *testing.T) {
	svc := newTestService(t)
	id := svc.authorized(t)

	code, body := svc.do(t, http.MethodPost, "/sessions/"+id+"/back", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, checkout.Failed(checkout.MessageCancelled), *body.State.Outcome)

	code, _ = svc.do(t, http.MethodPost, "/sessions/"+id+"/cancel", "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestEvents(t *testing.T) {
	svc := newTestService(t)
	server := httptest.NewServer(svc.engine)
	defer server.Close()

	id := svc.authorized(t)

	resp, err := http.Get(server.URL + "/sessions/" + id + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancelResp, err := http.Post(server.URL+"/sessions/"+id+"/cancel", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	_ = cancelResp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	stream := string(raw)

	assert.Contains(t, stream, "event:state")
	assert.Contains(t, stream, `"phase":"AUTHORIZED"`)
	assert.Contains(t, stream, `"phase":"TERMINAL"`)
}

func TestHealthAndMetrics(t *testing.T) {
	svc := newTestService(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		w := httptest.NewRecorder()
		svc.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
