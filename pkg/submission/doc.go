// Package submission drives a form session through its submission cycle.
//
// An Orchestrator owns one form.Session and applies the pure reducers of
// pkg/form under a mutex, so edits, blurs, submits and action completions
// are processed one at a time in arrival order:
//
//	o, err := submission.New(schemas.Contact(), submission.SimulatedAction(cfg.SubmitDelay),
//	    submission.WithConfig(cfg),
//	    submission.WithLogger(log),
//	)
//	_ = o.Change("name", "Ana")
//	_ = o.Blur("name")
//	fut, err := o.Submit(ctx)
//	outcome, err := fut.Await()
//
// A submit with failing fields moves idle > submitting > invalid > idle at
// once and never calls the action. A passing submit runs the action on its
// own goroutine; edits keep flowing meanwhile and are validated against the
// pending state. On success the values return to the schema defaults and the
// success state is left after the display duration through the injected
// Scheduler. On failure the session returns to idle with its values intact.
package submission
