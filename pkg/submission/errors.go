package submission

import "errors"

var (
	// ErrNilAction is returned by New when no action is given.
	ErrNilAction = errors.New("submission: action is nil")

	// ErrActionPanicked wraps a panic recovered from the action.
	ErrActionPanicked = errors.New("submission: action panicked")
)
