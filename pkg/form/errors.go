package form

import "errors"

var (
	// ErrSubmitInProgress is returned when a submit is attempted while another one is pending.
	ErrSubmitInProgress = errors.New("form: submission already in progress")

	// ErrInvalidState is returned when an event does not apply to the session's current state.
	ErrInvalidState = errors.New("form: event not allowed in current state")
)
