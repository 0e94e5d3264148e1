// Package gateway is the HTTP client for the payment gateway. One Client
// implements every gateway port the checkout orchestrator uses.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	mediaTypePayment = "application/vnd.ni-payment.v2+json"
	mediaTypeJSON    = "application/json"

	cookieAccessToken  = "access-token"
	cookiePaymentToken = "payment-token"
)

type Config struct {
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	UserAgent      string
}

type Client struct {
	http     *resty.Client
	retryCfg RetryConfig
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	retryCfg := DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retryCfg.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryBaseDelay > 0 {
		retryCfg.BaseDelay = cfg.RetryBaseDelay
	}
	if cfg.RetryMaxDelay > 0 {
		retryCfg.MaxDelay = cfg.RetryMaxDelay
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	r := resty.NewWithClient(httpClient)
	if cfg.UserAgent != "" {
		r.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: r, retryCfg: retryCfg}
}

type authForm struct {
	Code string `url:"code"`
}

type authBody struct {
	OrderURL string `json:"orderUrl"`
}

// Authenticate exchanges the pay page code for the access token and payment cookie.
func (c *Client) Authenticate(ctx context.Context, authURL, code string) (payment.AuthSession, error) {
	form, err := query.Values(authForm{Code: code})
	if err != nil {
		return payment.AuthSession{}, fmt.Errorf("encode auth form: %w", err)
	}

	resp, err := c.do("authenticate", func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader("Accept", mediaTypePayment).
			SetFormDataFromValues(form).
			Post(authURL)
	})
	if err != nil {
		if resp != nil && (resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden) {
			return payment.AuthSession{}, fmt.Errorf("authenticate: %w: status %d", ErrAuthFailed, resp.StatusCode())
		}
		return payment.AuthSession{}, fmt.Errorf("authenticate: %w", err)
	}

	session := payment.AuthSession{OrderURL: resp.Header().Get("Location")}
	for _, cookie := range resp.Cookies() {
		switch cookie.Name {
		case cookieAccessToken:
			session.AccessToken = cookie.Value
		case cookiePaymentToken:
			session.PaymentCookie = cookiePaymentToken + "=" + cookie.Value
		}
	}
	var body authBody
	if len(resp.Body()) > 0 && json.Unmarshal(resp.Body(), &body) == nil && body.OrderURL != "" {
		session.OrderURL = body.OrderURL
	}

	if !session.Valid() {
		return payment.AuthSession{}, fmt.Errorf("authenticate: %w: tokens missing from response", ErrAuthFailed)
	}
	return session, nil
}

type cardPaymentBody struct {
	PAN            string `json:"pan"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
	PayerIP        string `json:"payerIp,omitempty"`
	PlanID         string `json:"planId,omitempty"`
}

// SubmitCardPayment sends the card once. It is never retried.
func (c *Client) SubmitCardPayment(ctx context.Context, req payment.CardPaymentRequest) (payment.Response, error) {
	expiry, err := req.Card.APIExpiry()
	if err != nil {
		return payment.Response{}, err
	}
	body := cardPaymentBody{
		PAN:            req.Card.PAN,
		Expiry:         expiry,
		CVV:            req.Card.CVV,
		CardholderName: req.Card.HolderName,
		PayerIP:        req.PayerIP,
		PlanID:         req.PlanID,
	}

	resp, err := c.do("submit_card", func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader("Accept", mediaTypePayment).
			SetHeader("Content-Type", mediaTypePayment).
			SetHeader("Cookie", req.Session.PaymentCookie).
			SetBody(body).
			Put(req.PaymentURL)
	})
	if err != nil {
		return payment.Response{}, fmt.Errorf("submit card payment: %w", err)
	}
	return decodePaymentResponse(resp)
}

// FollowPartialAuthLink submits a partial authorization accept or decline link.
func (c *Client) FollowPartialAuthLink(ctx context.Context, link, paymentCookie string) (payment.Response, error) {
	resp, err := c.do("partial_auth", func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader("Accept", mediaTypePayment).
			SetHeader("Cookie", paymentCookie).
			Put(link)
	})
	if err != nil {
		return payment.Response{}, fmt.Errorf("follow partial auth link: %w", err)
	}
	return decodePaymentResponse(resp)
}

type eligibilityRequest struct {
	PAN string `json:"pan"`
}

type eligibilityResponse struct {
	MatchedPlans []payment.InstalmentPlan `json:"matchedPlans"`
}

// EligiblePlans returns no plans and no error when the card is not eligible.
func (c *Client) EligiblePlans(ctx context.Context, q payment.PlanQuery) ([]payment.InstalmentPlan, error) {
	var plans []payment.InstalmentPlan
	err := DoWithRetry(ctx, c.retryCfg, "eligibility_check", func() error {
		resp, err := c.do("eligibility_check", func() (*resty.Response, error) {
			return c.http.R().
				SetContext(ctx).
				SetHeader("Accept", mediaTypeJSON).
				SetAuthToken(q.AccessToken).
				SetBody(eligibilityRequest{PAN: q.CardNumber}).
				Post(strings.TrimSuffix(q.SelfURL, "/") + "/vis/eligibility-check")
		})
		if err != nil {
			return err
		}
		var body eligibilityResponse
		if len(resp.Body()) > 0 {
			if err := json.Unmarshal(resp.Body(), &body); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
			}
		}
		plans = body.MatchedPlans
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("eligibility check: %w", err)
	}
	return plans, nil
}

type requesterIPResponse struct {
	RequesterIP string `json:"requesterIp"`
}

// PayerIP asks the pay page origin which address the payer calls from.
func (c *Client) PayerIP(ctx context.Context, payPageURL string) (string, error) {
	u, err := url.Parse(payPageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("payer ip: invalid pay page url %q", payPageURL)
	}
	endpoint := u.Scheme + "://" + u.Host + "/api/requester-ip"

	var ip string
	err = DoWithRetry(ctx, c.retryCfg, "payer_ip", func() error {
		resp, err := c.do("payer_ip", func() (*resty.Response, error) {
			return c.http.R().SetContext(ctx).SetHeader("Accept", mediaTypeJSON).Get(endpoint)
		})
		if err != nil {
			return err
		}
		var body requesterIPResponse
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		ip = body.RequesterIP
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("payer ip: %w", err)
	}
	return ip, nil
}

type googlePayConfigResponse struct {
	AllowedPaymentMethods json.RawMessage `json:"allowedPaymentMethods"`
}

// GooglePayConfig returns nil when no config URL is set or the merchant has
// no Google Pay configuration.
func (c *Client) GooglePayConfig(ctx context.Context, configURL, accessToken string) (*payment.WalletConfig, error) {
	if configURL == "" {
		return nil, nil
	}

	var cfg *payment.WalletConfig
	err := DoWithRetry(ctx, c.retryCfg, "google_pay_config", func() error {
		resp, err := c.do("google_pay_config", func() (*resty.Response, error) {
			return c.http.R().
				SetContext(ctx).
				SetHeader("Accept", mediaTypeJSON).
				SetAuthToken(accessToken).
				Get(configURL)
		})
		if err != nil {
			return err
		}
		var body googlePayConfigResponse
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		methods := strings.TrimSpace(string(body.AllowedPaymentMethods))
		cfg = &payment.WalletConfig{
			CanUseGooglePay:       methods != "" && methods != "null" && methods != "[]",
			AllowedPaymentMethods: methods,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("google pay config: %w", err)
	}
	return cfg, nil
}

// AcceptGooglePay forwards the wallet payment data as is.
func (c *Client) AcceptGooglePay(ctx context.Context, acceptURL, accessToken, paymentData string) error {
	_, err := c.do("google_pay_accept", func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader("Accept", mediaTypeJSON).
			SetHeader("Content-Type", mediaTypeJSON).
			SetAuthToken(accessToken).
			SetBody(paymentData).
			Post(acceptURL)
	})
	if err != nil {
		return fmt.Errorf("google pay accept: %w", err)
	}
	return nil
}

// do runs one request, records its latency and maps the status to an error.
// The response is returned alongside status errors so callers can inspect it.
func (c *Client) do(operation string, send func() (*resty.Response, error)) (*resty.Response, error) {
	start := time.Now()
	resp, err := send()
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(operation, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	metrics.GatewayRequestDuration.WithLabelValues(operation, strconv.Itoa(resp.StatusCode())).Observe(time.Since(start).Seconds())
	return resp, handleResponse(resp)
}

func handleResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	body := truncate(resp.String(), 512)

	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status %d: %s", ErrBadRequest, code, body)
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrGatewayUnavailable, code)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUnexpectedStatus, code, body)
	}
}

func decodePaymentResponse(resp *resty.Response) (payment.Response, error) {
	var out payment.Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return payment.Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.State == "" {
		return payment.Response{}, fmt.Errorf("%w: missing state", ErrMalformedResponse)
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
