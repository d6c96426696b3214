// Package statemachine provides immutable, type-safe finite-state transition
// tables.
//
// A Table does not hold a current state. Callers keep the state inside their
// own values (for example a form session) and ask the table for the next one:
//
//	type State string
//	func (s State) Name() string { return string(s) }
//
//	type Event string
//	func (e Event) Name() string { return string(e) }
//
//	table := statemachine.MustNew(State("draft"),
//	    statemachine.WithTransition(State("draft"), State("in_review"), Event("submit")),
//	)
//
//	next, err := table.Next(ctx, State("draft"), Event("submit"), nil)
//
// This keeps state transitions pure with respect to the table, so a single
// table can serve any number of independent sessions concurrently.
//
// # Guards
//
// Guards veto a transition based on runtime data. When several transitions
// exist for the same state and event, the first one whose guards all pass
// wins.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* event not valid in this state */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* guards said no */ }
package statemachine
