package checkout

import "errors"

var (
	// ErrMissingAuthCode is returned by Authorize when the pay page URL carries no code
	ErrMissingAuthCode = errors.New("pay page url has no authorization code")

	// ErrInvalidPhase is returned when an operation is not allowed in the current phase
	ErrInvalidPhase = errors.New("operation not allowed in current phase")

	// ErrOperationInProgress is returned when another network operation is still running
	ErrOperationInProgress = errors.New("another checkout operation is in progress")

	// ErrSessionFinished is returned for any operation after the terminal outcome
	ErrSessionFinished = errors.New("checkout session already finished")

	// ErrUnknownPlan is returned when the chosen instalment plan was not offered
	ErrUnknownPlan = errors.New("instalment plan was not offered")
)
