package form

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ApplyChange stores value for field. The field is revalidated only when it
// is touched or a submission is pending; otherwise its error entry is left as is.
func ApplyChange(schema validator.Schema, sess Session, field, value string) (Session, error) {
	fieldSchema, err := validator.ExtractFieldSchema(schema, field)
	if err != nil {
		return sess, err
	}

	next := sess.Clone()
	next.Values[field] = value

	if next.Touched.Has(field) || next.State == StateSubmitting {
		next.Errors = next.Errors.Set(field, validator.ValidateField(fieldSchema, field, value))
	}
	return next, nil
}

// ApplyBlur marks field touched and validates its current value.
func ApplyBlur(schema validator.Schema, sess Session, field string) (Session, error) {
	fieldSchema, err := validator.ExtractFieldSchema(schema, field)
	if err != nil {
		return sess, err
	}

	next := sess.Clone()
	next.Touched = next.Touched.With(field)
	next.Errors = next.Errors.Set(field, validator.ValidateField(fieldSchema, field, next.Values[field]))
	return next, nil
}

// ApplySubmit starts a submission: every field becomes touched and the whole
// form is validated. With failures the session moves on to invalid and the
// outcome is OutcomeInvalid. Without failures the errors are cleared, the
// session stays submitting and the outcome is OutcomeReady.
func ApplySubmit(schema validator.Schema, sess Session) (Session, Outcome, error) {
	if !Flow.CanFire(context.Background(), sess.State, EventSubmit, sess) {
		return sess, "", ErrSubmitInProgress
	}

	next, err := advance(sess, EventSubmit)
	if err != nil {
		return sess, "", err
	}

	next.Touched = AllOf(schema.Fields())
	errs := validator.ValidateForm(schema, next.Values)
	if !errs.IsEmpty() {
		next.Errors = errs
		if next, err = advance(next, EventReject); err != nil {
			return sess, "", err
		}
		return next, OutcomeInvalid, nil
	}

	next.Errors = validator.ErrorMap{}
	return next, OutcomeReady, nil
}

// ApplyResolved completes a pending submission: values return to the schema
// defaults and errors and touched fields are cleared.
func ApplyResolved(schema validator.Schema, sess Session) (Session, error) {
	next, err := advance(sess, EventResolve)
	if err != nil {
		return sess, err
	}
	next.Values = schema.Defaults()
	next.Errors = validator.ErrorMap{}
	next.Touched = TouchedSet{}
	return next, nil
}

// ApplyFailed abandons a pending submission and keeps the entered values.
func ApplyFailed(sess Session) (Session, error) {
	return advance(sess, EventFail)
}

// ApplySettle returns an invalid or successful session to idle.
func ApplySettle(sess Session) (Session, error) {
	return advance(sess, EventSettle)
}

func advance(sess Session, event Event) (Session, error) {
	to, err := Flow.Next(context.Background(), sess.State, event, sess)
	switch {
	case statemachine.IsNoTransitionAvailableError(err):
		return sess, fmt.Errorf("%w: %s on %s", ErrInvalidState, event, sess.State)
	case statemachine.IsTransitionRejectedError(err):
		return sess, fmt.Errorf("%w: %s refused on %s", ErrInvalidState, event, sess.State)
	case err != nil:
		return sess, err
	}
	next := sess.Clone()
	next.State = to
	return next, nil
}
