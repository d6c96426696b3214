package submission

import (
	"context"
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Action delivers validated values. It runs on its own goroutine; the
// session keeps accepting edits while it is pending.
type Action func(ctx context.Context, values validator.Values) error

// SimulatedAction stands in for a network call: it waits delay and succeeds.
// It returns ctx.Err() if ctx ends first. The Orchestrator hands actions a
// context detached from cancellation, so that only applies to direct callers.
func SimulatedAction(delay time.Duration) Action {
	return func(ctx context.Context, _ validator.Values) error {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
