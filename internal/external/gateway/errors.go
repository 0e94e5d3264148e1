package gateway

import "errors"

var (
	// ErrAuthFailed is returned when the gateway rejects the authorization code
	ErrAuthFailed = errors.New("gateway authorization failed")

	// ErrBadRequest is returned when the gateway rejects the request payload (400, 422)
	ErrBadRequest = errors.New("gateway rejected request")

	// ErrNotFound is returned when the gateway resource does not exist (404)
	ErrNotFound = errors.New("gateway resource not found")

	// ErrGatewayUnavailable is returned for 5xx responses and transport failures
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrUnexpectedStatus is returned for any other non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected gateway status")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded
	ErrMalformedResponse = errors.New("malformed gateway response")
)
