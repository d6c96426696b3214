package submission

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithScheduler sets the clock used to leave the success state. Nil is ignored.
func WithScheduler(s Scheduler) Option {
	return func(o *Orchestrator) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithDisplayDuration sets how long the success state lasts. Negative values are ignored.
func WithDisplayDuration(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.display = d
		}
	}
}

// WithConfig applies the timings from cfg. The submit delay is not used here;
// it parameterises SimulatedAction.
func WithConfig(cfg Config) Option {
	return WithDisplayDuration(cfg.SuccessDisplay)
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithListener registers fn for every state change. Listeners run in order
// of registration while the orchestrator is locked and must not call back
// into it.
func WithListener(fn Listener) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.listeners = append(o.listeners, fn)
		}
	}
}

// WithSession starts from an existing session instead of a fresh one.
func WithSession(sess form.Session) Option {
	return func(o *Orchestrator) {
		o.sess = sess.Clone()
		o.hasSession = true
	}
}
