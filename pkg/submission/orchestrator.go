package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Listener observes a state change of the session.
type Listener func(from, to form.State)

// Orchestrator owns one form session and serialises every event on it:
// edits, blurs, submits and the completions of the submit action.
type Orchestrator struct {
	mu sync.Mutex

	schema     validator.Schema
	action     Action
	sess       form.Session
	hasSession bool
	generation uint64

	scheduler Scheduler
	display   time.Duration
	logger    *slog.Logger
	listeners []Listener
}

// New creates an orchestrator for schema that delivers valid submissions to action.
func New(schema validator.Schema, action Action, opts ...Option) (*Orchestrator, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	o := &Orchestrator{
		schema:    schema,
		action:    action,
		scheduler: ClockScheduler{},
		display:   DefaultDisplayDuration,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if !o.hasSession {
		o.sess = form.NewSession(schema)
	}
	o.logger = o.logger.With(logger.Component("submission"), logger.FormID(o.sess.ID.String()))
	return o, nil
}

// Change records a new raw value for field.
func (o *Orchestrator) Change(field, value string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := form.ApplyChange(o.schema, o.sess, field, value)
	if err != nil {
		return err
	}
	o.sess = next
	return nil
}

// Blur marks field touched and validates it.
func (o *Orchestrator) Blur(field string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := form.ApplyBlur(o.schema, o.sess, field)
	if err != nil {
		return err
	}
	o.sess = next
	return nil
}

// Submit validates the whole form. An invalid form passes through the
// invalid state back to idle and the returned future is already resolved
// with OutcomeInvalid. A valid form starts the action; the future resolves
// with OutcomeSubmitted, or the action's error, once the session has been
// updated. The action is not cancelled when ctx is.
func (o *Orchestrator) Submit(ctx context.Context) (*async.Future[form.Outcome], error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	prev := o.sess
	next, outcome, err := form.ApplySubmit(o.schema, prev)
	if err != nil {
		o.logger.DebugContext(ctx, "submit refused", logger.State(prev.State.Name()), logger.Error(err))
		return nil, err
	}
	o.generation++
	o.setState(ctx, prev.State, form.StateSubmitting)

	if outcome == form.OutcomeInvalid {
		o.sess = next
		o.setState(ctx, form.StateSubmitting, form.StateInvalid)
		o.logger.InfoContext(ctx, "submission rejected",
			logger.Outcome(string(outcome)),
			logger.ErrorCount(len(next.Errors)),
		)
		if err := o.settle(ctx); err != nil {
			return nil, err
		}
		return async.Resolved(outcome, nil), nil
	}

	o.sess = next
	gen := o.generation
	values := next.Values.Clone()
	started := time.Now()

	return async.Async(context.WithoutCancel(ctx), values, func(ctx context.Context, values validator.Values) (form.Outcome, error) {
		err := o.run(ctx, values)
		return o.complete(ctx, gen, err, time.Since(started))
	}), nil
}

// run calls the action, turning a panic into ErrActionPanicked so the
// session always leaves the submitting state.
func (o *Orchestrator) run(ctx context.Context, values validator.Values) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanicked, r)
		}
	}()
	return o.action(ctx, values)
}

func (o *Orchestrator) complete(ctx context.Context, gen uint64, actionErr error, took time.Duration) (form.Outcome, error) {
	outcome, err := o.deliver(ctx, actionErr, took)
	if err != nil {
		return outcome, err
	}
	// the scheduler may run the callback inline, so o.mu must be free here
	o.scheduler.AfterFunc(o.display, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		// a newer submission owns the state now
		if o.generation != gen || o.sess.State != form.StateSuccess {
			return
		}
		if err := o.settle(context.Background()); err != nil {
			o.logger.Error("failed to leave success state", logger.Error(err))
		}
	})
	return outcome, nil
}

// deliver records the action result on the session under o.mu.
func (o *Orchestrator) deliver(ctx context.Context, actionErr error, took time.Duration) (form.Outcome, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if actionErr != nil {
		o.logger.ErrorContext(ctx, "submission failed", logger.Error(actionErr), logger.Duration(took))
		next, err := form.ApplyFailed(o.sess)
		if err != nil {
			return "", errors.Join(actionErr, err)
		}
		o.sess = next
		o.setState(ctx, form.StateSubmitting, form.StateIdle)
		return "", actionErr
	}

	next, err := form.ApplyResolved(o.schema, o.sess)
	if err != nil {
		return "", err
	}
	o.sess = next
	o.setState(ctx, form.StateSubmitting, form.StateSuccess)
	o.logger.InfoContext(ctx, "submission delivered", logger.Outcome(string(form.OutcomeSubmitted)), logger.Duration(took))
	return form.OutcomeSubmitted, nil
}

// settle moves invalid or success back to idle. Caller holds o.mu.
func (o *Orchestrator) settle(ctx context.Context) error {
	from := o.sess.State
	next, err := form.ApplySettle(o.sess)
	if err != nil {
		return err
	}
	o.sess = next
	o.setState(ctx, from, next.State)
	return nil
}

// setState notifies listeners. Caller holds o.mu.
func (o *Orchestrator) setState(ctx context.Context, from, to form.State) {
	o.logger.DebugContext(ctx, "state changed", logger.Transition(from.Name(), to.Name()))
	for _, l := range o.listeners {
		l(from, to)
	}
}

// Snapshot returns a copy of the current session.
func (o *Orchestrator) Snapshot() form.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sess.Clone()
}

func (o *Orchestrator) State() form.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sess.State
}

// IsSubmitting reports whether an action is pending.
func (o *Orchestrator) IsSubmitting() bool {
	return o.State() == form.StateSubmitting
}

// Schema returns the schema the orchestrator validates against.
func (o *Orchestrator) Schema() validator.Schema {
	return o.schema
}
