package form

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Session is the complete state of one form instance. It is a value: the
// reducers never mutate their input and always return a fresh Session.
type Session struct {
	ID      uuid.UUID
	Values  validator.Values
	Errors  validator.ErrorMap
	Touched TouchedSet
	State   State
}

// NewSession starts an idle session holding the schema defaults.
func NewSession(schema validator.Schema) Session {
	return Session{
		ID:      uuid.New(),
		Values:  schema.Defaults(),
		Errors:  validator.ErrorMap{},
		Touched: TouchedSet{},
		State:   Flow.Initial(),
	}
}

// Value returns the raw value of field, "" when unset.
func (s Session) Value(field string) string {
	return s.Values[field]
}

// IsSubmitting reports whether a submission is pending.
func (s Session) IsSubmitting() bool {
	return s.State == StateSubmitting
}

// Clone returns a deep copy of the session maps.
func (s Session) Clone() Session {
	touched := make(TouchedSet, len(s.Touched))
	for f := range s.Touched {
		touched[f] = struct{}{}
	}
	return Session{
		ID:      s.ID,
		Values:  s.Values.Clone(),
		Errors:  s.Errors.Clone(),
		Touched: touched,
		State:   s.State,
	}
}

// Snapshot is a presentation view of a session with plain message strings.
type Snapshot struct {
	ID      string            `json:"id"`
	State   State             `json:"state"`
	Values  map[string]string `json:"values"`
	Errors  map[string]string `json:"errors"`
	Touched []string          `json:"touched"`
}

// Snapshot renders the session for display.
func (s Session) Snapshot() Snapshot {
	return Snapshot{
		ID:      s.ID.String(),
		State:   s.State,
		Values:  s.Values.Clone(),
		Errors:  s.Errors.Messages(),
		Touched: s.Touched.Names(),
	}
}
