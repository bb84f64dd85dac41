package dispatch

import "errors"

// Precondition failures surfaced by the lifecycle operations. None of these
// are retryable: repeating the call will not change the outcome.
var (
	// ErrRequestTaken means another provider decided the request first.
	ErrRequestTaken = errors.New("request no longer available")

	// ErrValidationCode means a confirm call carried the wrong code.
	ErrValidationCode = errors.New("validation code does not match")

	// ErrTerminalState means the request already reached a final status.
	ErrTerminalState = errors.New("request is in a terminal state")

	// ErrInvalidTransition means the requested status change is not in the
	// lifecycle table at all.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrActiveRequest means the requester already has an open request.
	ErrActiveRequest = errors.New("requester already has an active request")

	// ErrNotFound means the backend has no record of the request.
	ErrNotFound = errors.New("request not found")
)
