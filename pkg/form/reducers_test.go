package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/schemas"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func filled(t *testing.T, s validator.Schema, values map[string]string) form.Session {
	t.Helper()
	sess := form.NewSession(s)
	for field, v := range values {
		var err error
		sess, err = form.ApplyChange(s, sess, field, v)
		require.NoError(t, err)
	}
	return sess
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s := validator.MustDefineSchema(
		validator.Field("name", validator.Required()),
		validator.Field("country", validator.Required()).Default("PT"),
	)
	sess := form.NewSession(s)

	assert.Equal(t, form.StateIdle, sess.State)
	assert.Equal(t, validator.Values{"name": "", "country": "PT"}, sess.Values)
	assert.True(t, sess.Errors.IsEmpty())
	assert.Zero(t, sess.Touched.Len())
	assert.NotEqual(t, form.NewSession(s).ID, sess.ID)
}

func TestApplyChange(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()

	t.Run("untouched field keeps no error", func(t *testing.T) {
		sess, err := form.ApplyChange(s, form.NewSession(s), "name", "Jo")
		require.NoError(t, err)
		assert.Equal(t, "Jo", sess.Value("name"))
		assert.False(t, sess.Errors.Has("name"))
	})

	t.Run("touched field is revalidated", func(t *testing.T) {
		sess, err := form.ApplyBlur(s, form.NewSession(s), "name")
		require.NoError(t, err)
		require.Equal(t, validator.CodeRequired, sess.Errors["name"].Code)

		sess, err = form.ApplyChange(s, sess, "name", "Jo")
		require.NoError(t, err)
		assert.Equal(t, "name must be at least 3 characters", sess.Errors.Message("name"))

		sess, err = form.ApplyChange(s, sess, "name", "Joe")
		require.NoError(t, err)
		assert.False(t, sess.Errors.Has("name"))
	})

	t.Run("other fields are untouched", func(t *testing.T) {
		sess, _, err := form.ApplySubmit(s, form.NewSession(s))
		require.NoError(t, err)
		require.Equal(t, []string{"email", "message", "name"}, sess.Errors.Fields())

		sess, err = form.ApplySettle(sess)
		require.NoError(t, err)
		sess, err = form.ApplyChange(s, sess, "name", "Joe")
		require.NoError(t, err)
		assert.Equal(t, []string{"email", "message"}, sess.Errors.Fields())
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := form.NewSession(s)
		_, err := form.ApplyChange(s, before, "name", "Joe")
		require.NoError(t, err)
		assert.Equal(t, "", before.Value("name"))
	})

	t.Run("unknown field", func(t *testing.T) {
		before := form.NewSession(s)
		after, err := form.ApplyChange(s, before, "phone", "123")
		assert.ErrorIs(t, err, validator.ErrUnknownField)
		assert.Equal(t, before, after)
	})
}

func TestApplyBlur(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()
	sess := filled(t, s, map[string]string{"email": "a@b"})

	sess, err := form.ApplyBlur(s, sess, "email")
	require.NoError(t, err)
	assert.True(t, sess.Touched.Has("email"))
	assert.False(t, sess.Touched.Has("name"))
	assert.Equal(t, validator.CodeInvalidFormat, sess.Errors["email"].Code)
	assert.Equal(t, []string{"email"}, sess.Errors.Fields())

	_, err = form.ApplyBlur(s, sess, "phone")
	assert.ErrorIs(t, err, validator.ErrUnknownField)
}

func TestApplySubmit(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()

	t.Run("invalid form", func(t *testing.T) {
		sess := filled(t, s, map[string]string{"name": "Jo", "email": "a@b.c"})

		next, outcome, err := form.ApplySubmit(s, sess)
		require.NoError(t, err)
		assert.Equal(t, form.OutcomeInvalid, outcome)
		assert.Equal(t, form.StateInvalid, next.State)
		assert.Equal(t, []string{"email", "message", "name"}, next.Touched.Names())
		assert.Equal(t, []string{"message", "name"}, next.Errors.Fields())
		assert.Equal(t, "Jo", next.Value("name"))

		next, err = form.ApplySettle(next)
		require.NoError(t, err)
		assert.Equal(t, form.StateIdle, next.State)
		assert.Equal(t, []string{"message", "name"}, next.Errors.Fields())
	})

	t.Run("valid form", func(t *testing.T) {
		sess := filled(t, s, map[string]string{"name": "Ana", "email": "a@b.c", "message": "Hello there!"})

		next, outcome, err := form.ApplySubmit(s, sess)
		require.NoError(t, err)
		assert.Equal(t, form.OutcomeReady, outcome)
		assert.Equal(t, form.StateSubmitting, next.State)
		assert.True(t, next.IsSubmitting())
		assert.True(t, next.Errors.IsEmpty())

		_, _, err = form.ApplySubmit(s, next)
		assert.ErrorIs(t, err, form.ErrSubmitInProgress)
	})

	t.Run("fresh result decides", func(t *testing.T) {
		sess, _, err := form.ApplySubmit(s, form.NewSession(s))
		require.NoError(t, err)
		sess, err = form.ApplySettle(sess)
		require.NoError(t, err)

		// Values fixed while untouched fields would not clear the old errors.
		sess.Touched = form.TouchedSet{}
		for field, v := range map[string]string{"name": "Ana", "email": "a@b.c", "message": "Hello there!"} {
			sess, err = form.ApplyChange(s, sess, field, v)
			require.NoError(t, err)
		}
		require.False(t, sess.Errors.IsEmpty())

		_, outcome, err := form.ApplySubmit(s, sess)
		require.NoError(t, err)
		assert.Equal(t, form.OutcomeReady, outcome)
	})
}

func TestSubmissionLifecycle(t *testing.T) {
	t.Parallel()

	s := validator.MustDefineSchema(
		validator.Field("name", validator.Required()),
		validator.Field("plan", validator.Required()).Default("free"),
	)
	sess := filled(t, s, map[string]string{"name": "Ana", "plan": "pro"})

	sess, outcome, err := form.ApplySubmit(s, sess)
	require.NoError(t, err)
	require.Equal(t, form.OutcomeReady, outcome)

	t.Run("edits while pending are validated", func(t *testing.T) {
		pending, err := form.ApplyChange(s, sess, "name", "")
		require.NoError(t, err)
		assert.Equal(t, validator.CodeRequired, pending.Errors["name"].Code)
		assert.Equal(t, form.StateSubmitting, pending.State)
	})

	t.Run("resolve resets to defaults", func(t *testing.T) {
		done, err := form.ApplyResolved(s, sess)
		require.NoError(t, err)
		assert.Equal(t, form.StateSuccess, done.State)
		assert.Equal(t, validator.Values{"name": "", "plan": "free"}, done.Values)
		assert.Zero(t, done.Touched.Len())
		assert.True(t, done.Errors.IsEmpty())

		idle, err := form.ApplySettle(done)
		require.NoError(t, err)
		assert.Equal(t, form.StateIdle, idle.State)
	})

	t.Run("failure keeps values", func(t *testing.T) {
		failed, err := form.ApplyFailed(sess)
		require.NoError(t, err)
		assert.Equal(t, form.StateIdle, failed.State)
		assert.Equal(t, "pro", failed.Value("plan"))
	})
}

func TestInvalidEvents(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()
	idle := form.NewSession(s)

	_, err := form.ApplyResolved(s, idle)
	assert.ErrorIs(t, err, form.ErrInvalidState)

	_, err = form.ApplyFailed(idle)
	assert.ErrorIs(t, err, form.ErrInvalidState)

	_, err = form.ApplySettle(idle)
	assert.ErrorIs(t, err, form.ErrInvalidState)
}

func TestFlow_RejectNeedsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := schemas.Contact()
	clean := form.NewSession(s)
	clean.State = form.StateSubmitting

	_, err := form.Flow.Next(ctx, form.StateSubmitting, form.EventReject, clean)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.False(t, form.Flow.CanFire(ctx, form.StateSubmitting, form.EventReject, nil))

	failing := clean.Clone()
	failing.Errors = validator.ValidateForm(s, failing.Values)
	require.False(t, failing.Errors.IsEmpty())

	to, err := form.Flow.Next(ctx, form.StateSubmitting, form.EventReject, failing)
	require.NoError(t, err)
	assert.Equal(t, form.StateInvalid, to)

	t.Run("submit is refused only while submitting", func(t *testing.T) {
		assert.False(t, form.Flow.CanFire(ctx, form.StateSubmitting, form.EventSubmit, clean))
		for _, st := range []form.State{form.StateIdle, form.StateInvalid, form.StateSuccess} {
			assert.True(t, form.Flow.CanFire(ctx, st, form.EventSubmit, clean), st)
		}
	})
}

func TestTouchedSet(t *testing.T) {
	t.Parallel()

	var empty form.TouchedSet
	assert.False(t, empty.Has("a"))

	one := empty.With("b")
	two := one.With("a")
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, []string{"a", "b"}, two.Names())
	assert.Equal(t, []string{"x", "y"}, form.AllOf([]string{"y", "x"}).Names())
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()
	sess, err := form.ApplyBlur(s, form.NewSession(s), "name")
	require.NoError(t, err)

	snap := sess.Snapshot()
	assert.Equal(t, sess.ID.String(), snap.ID)
	assert.Equal(t, form.StateIdle, snap.State)
	assert.Equal(t, map[string]string{"name": "name is required"}, snap.Errors)
	assert.Equal(t, []string{"name"}, snap.Touched)
}
