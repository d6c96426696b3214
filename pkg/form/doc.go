// Package form models one form instance as a Session value and changes it
// only through pure reducers.
//
// ApplyChange stores input and revalidates a field only once it is touched
// or while a submission is pending. ApplyBlur touches a field and validates
// it. ApplySubmit touches every field and validates the whole form; the fresh
// result alone decides between OutcomeInvalid and OutcomeReady.
//
// Submission states follow Flow:
//
//	idle, invalid, success --submit--> submitting
//	submitting --reject--> invalid
//	submitting --resolve--> success
//	submitting --fail--> idle
//	invalid, success --settle--> idle
//
// ApplyResolved, ApplyFailed and ApplySettle fire the remaining events. A
// reducer given an event the current state does not accept returns
// ErrInvalidState and the session unchanged.
package form
