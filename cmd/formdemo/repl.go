package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingField   = errors.New("missing field name")
	errNothingPending = errors.New("no submission pending")
)

// reply is one JSON line of output.
type reply struct {
	Command  string        `json:"command"`
	Outcome  form.Outcome  `json:"outcome,omitempty"`
	Error    string        `json:"error,omitempty"`
	Snapshot form.Snapshot `json:"snapshot"`
}

type repl struct {
	o       *submission.Orchestrator
	out     io.Writer
	pending *async.Future[form.Outcome]
}

func newREPL(o *submission.Orchestrator, out io.Writer) *repl {
	return &repl{o: o, out: out}
}

// Run processes commands from in until EOF, quit or ctx cancellation.
// Command errors are reported in the reply; only I/O errors end the session.
func (r *repl) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		// trailing blanks may belong to a value, so only the left side is trimmed
		line := strings.TrimLeft(strings.TrimRight(sc.Text(), "\r"), " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		cmd = strings.TrimSpace(cmd)
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := r.write(r.exec(ctx, cmd, rest)); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (r *repl) exec(ctx context.Context, cmd, args string) reply {
	res := reply{Command: cmd}
	var err error

	switch cmd {
	case "change":
		field, value, _ := strings.Cut(strings.TrimLeft(args, " "), " ")
		if field == "" {
			err = errMissingField
			break
		}
		err = r.o.Change(field, value)
	case "blur":
		field := strings.TrimSpace(args)
		if field == "" {
			err = errMissingField
			break
		}
		err = r.o.Blur(field)
	case "submit":
		var fut *async.Future[form.Outcome]
		if fut, err = r.o.Submit(ctx); err != nil {
			break
		}
		r.pending = fut
		// a rejected form resolves at once; a delivery is left for wait
		if fut.IsComplete() {
			if outcome, _ := fut.Await(); outcome == form.OutcomeInvalid {
				res.Outcome = outcome
				r.pending = nil
			}
		}
	case "wait":
		if r.pending == nil {
			err = errNothingPending
			break
		}
		res.Outcome, err = r.pending.AwaitContext(ctx)
		r.pending = nil
	case "show":
	default:
		err = fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}

	if err != nil {
		res.Error = err.Error()
	}
	res.Snapshot = r.o.Snapshot().Snapshot()
	return res
}

func (r *repl) write(res reply) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(b))
	return err
}
