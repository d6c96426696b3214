package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/submission"
)

// fill prompts for each field in schema order, then submits and prints the
// final snapshot. Ctrl+C ends the session without submitting.
func fill(ctx context.Context, o *submission.Orchestrator, out io.Writer) error {
	for _, field := range o.Schema().Fields() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var answer string
		prompt := &survey.Input{
			Message: field + ":",
			Default: o.Snapshot().Value(field),
		}
		if err := survey.AskOne(prompt, &answer, survey.WithValidator(fieldValidator(o, field))); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	fut, err := o.Submit(ctx)
	if err != nil {
		return err
	}
	outcome, err := fut.AwaitContext(ctx)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(reply{Command: "fill", Outcome: outcome, Snapshot: o.Snapshot().Snapshot()}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// fieldValidator feeds a prompt answer through change and blur so the
// prompt shows the same message the form would.
func fieldValidator(o *submission.Orchestrator, field string) survey.Validator {
	return func(ans any) error {
		raw, _ := ans.(string)
		if err := o.Change(field, raw); err != nil {
			return err
		}
		if err := o.Blur(field); err != nil {
			return err
		}
		if verr, failed := o.Snapshot().Errors[field]; failed {
			return verr
		}
		return nil
	}
}
