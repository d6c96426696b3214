package statemachine

import (
	"context"
)

// Named is the constraint for state and event types. Names identify states
// and events in errors and logs.
type Named interface {
	comparable
	Name() string
}

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E Named] func(ctx context.Context, from S, event E, data any) bool

// Transition defines a state change triggered by an event, with optional guards.
type Transition[S, E Named] struct {
	From   S
	To     S
	Event  E
	Guards []Guard[S, E] // All must pass for transition to proceed
}

// Table is an immutable transition table. It holds no current state: callers
// keep the state in their own values and ask the table for the next one.
type Table[S, E Named] struct {
	initial     S
	transitions map[S]map[E][]Transition[S, E]
}

func (t *Table[S, E]) Initial() S {
	return t.initial
}

// Next returns the state reached from `from` on event. The first transition
// whose guards all pass wins.
func (t *Table[S, E]) Next(ctx context.Context, from S, event E, data any) (S, error) {
	tr, err := t.find(ctx, from, event, data)
	if err != nil {
		return from, err
	}
	return tr.To, nil
}

// CanFire reports whether event has a transition from `from` whose guards pass.
func (t *Table[S, E]) CanFire(ctx context.Context, from S, event E, data any) bool {
	_, err := t.find(ctx, from, event, data)
	return err == nil
}

func (t *Table[S, E]) find(ctx context.Context, from S, event E, data any) (*Transition[S, E], error) {
	candidates := t.transitions[from][event]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(from.Name(), event.Name())
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, from, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, NewErrTransitionRejected(from.Name(), event.Name())
}

func guardsPass[S, E Named](ctx context.Context, guards []Guard[S, E], from S, event E, data any) bool {
	for _, guard := range guards {
		if !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
