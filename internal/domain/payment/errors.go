package payment

import "errors"

var (
	// ErrInvalidIntent is returned when a payment intent misses a required field
	ErrInvalidIntent = errors.New("invalid payment intent")

	// ErrInvalidCard is returned when card details fail local validation
	ErrInvalidCard = errors.New("invalid card details")

	// ErrUnknownState is used when the gateway reports a state the checkout flow does not handle
	ErrUnknownState = errors.New("unknown payment state")
)
