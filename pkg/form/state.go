package form

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

// State is the submission state of a session.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateInvalid    State = "invalid"
	StateSuccess    State = "success"
)

func (s State) Name() string { return string(s) }

// Event drives submission state changes.
type Event string

const (
	EventSubmit  Event = "submit"
	EventReject  Event = "reject"
	EventResolve Event = "resolve"
	EventFail    Event = "fail"
	EventSettle  Event = "settle"
)

func (e Event) Name() string { return string(e) }

// Outcome is the result of a submit attempt.
type Outcome string

const (
	// OutcomeInvalid: validation failed and the action was not invoked.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeReady: validation passed and the action may be invoked.
	OutcomeReady Outcome = "ready"
	// OutcomeSubmitted: the action completed and the session was reset.
	OutcomeSubmitted Outcome = "submitted"
)

// Flow is the submission transition table. Invalid and Success are transient:
// they accept a new submit and settle back to Idle. Transition data is the
// Session being advanced.
var Flow = statemachine.MustNew(StateIdle,
	statemachine.WithTransitionFrom([]State{StateIdle, StateInvalid, StateSuccess}, StateSubmitting, EventSubmit),
	statemachine.WithTransition(StateSubmitting, StateInvalid, EventReject, statemachine.WithGuard(hasErrors)),
	statemachine.WithTransition(StateSubmitting, StateSuccess, EventResolve),
	statemachine.WithTransition(StateSubmitting, StateIdle, EventFail),
	statemachine.WithTransitionFrom([]State{StateInvalid, StateSuccess}, StateIdle, EventSettle),
)

// hasErrors allows a rejection only for a session that failed validation.
func hasErrors(_ context.Context, _ State, _ Event, data any) bool {
	sess, ok := data.(Session)
	return ok && !sess.Errors.IsEmpty()
}
