package statemachine

import (
	"fmt"
)

// Option configures a table during construction.
type Option[S, E Named] func(*Table[S, E]) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E Named] func(*Transition[S, E])

// New builds a transition table with the given initial state.
func New[S, E Named](initial S, opts ...Option[S, E]) (*Table[S, E], error) {
	if initial.Name() == "" {
		return nil, ErrInvalidState
	}

	t := &Table[S, E]{
		initial:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is like New but panics if any option fails to apply.
func MustNew[S, E Named](initial S, opts ...Option[S, E]) *Table[S, E] {
	t, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return t
}

// WithTransition adds a transition. Multiple transitions for the same state
// and event are tried in the order they were added.
func WithTransition[S, E Named](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(t *Table[S, E]) error {
		if from.Name() == "" || to.Name() == "" || event.Name() == "" {
			return ErrInvalidTransition
		}

		tr := Transition[S, E]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&tr)
		}

		if t.transitions[from] == nil {
			t.transitions[from] = make(map[E][]Transition[S, E])
		}
		t.transitions[from][event] = append(t.transitions[from][event], tr)
		return nil
	}
}

// WithTransitionFrom adds the same transition from each of the given states.
func WithTransitionFrom[S, E Named](froms []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(t *Table[S, E]) error {
		for i, from := range froms {
			if err := WithTransition(from, to, event, opts...)(t); err != nil {
				return fmt.Errorf("failed to add transition[%d] %s->%s on %s: %w", i, from.Name(), to.Name(), event.Name(), err)
			}
		}
		return nil
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard[S, E Named](guard Guard[S, E]) TransitionOption[S, E] {
	return func(tr *Transition[S, E]) {
		if guard != nil {
			tr.Guards = append(tr.Guards, guard)
		}
	}
}
