package payment

// State is the payment state reported by the gateway. Values outside the
// known set are kept verbatim so they can be surfaced to the host.
type State string

const (
	StateAuthorised          State = "AUTHORISED"
	StatePurchased           State = "PURCHASED"
	StateCaptured            State = "CAPTURED"
	StatePostAuthReview      State = "POST_AUTH_REVIEW"
	StateAwait3DS            State = "AWAIT_3DS"
	StateAwaitingPartialAuth State = "AWAITING_PARTIAL_AUTH_APPROVAL"
	StateFailed              State = "FAILED"
)
