package validator

import (
	"errors"
	"maps"
	"slices"
	"sort"
)

// Values maps field names to raw string input.
type Values map[string]string

func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// With returns a copy of v with name set to value.
func (v Values) With(name, value string) Values {
	out := v.Clone()
	out[name] = value
	return out
}

// ErrorMap holds at most one error per field. A field is present iff its rules failed.
type ErrorMap map[string]ValidationError

func (m ErrorMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Message returns the field's rendered message, or "" when the field has no error.
func (m ErrorMap) Message(field string) string {
	return m[field].Message
}

// Messages returns field → message.
func (m ErrorMap) Messages() map[string]string {
	out := make(map[string]string, len(m))
	for field, err := range m {
		out[field] = err.Message
	}
	return out
}

// Fields returns the failing field names, sorted.
func (m ErrorMap) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

func (m ErrorMap) Clone() ErrorMap {
	if m == nil {
		return ErrorMap{}
	}
	return maps.Clone(m)
}

// Set returns a copy of m where the field's entry reflects err: a field
// failure replaces the entry, nil removes it. Errors that are not field
// failures leave the entry unchanged.
func (m ErrorMap) Set(field string, err error) ErrorMap {
	out := m.Clone()
	if err == nil {
		delete(out, field)
		return out
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		out[field] = verr
	}
	return out
}

// Err returns the failures as ValidationErrors sorted by field, or nil when m is empty.
func (m ErrorMap) Err() error {
	if len(m) == 0 {
		return nil
	}
	errs := make(ValidationErrors, 0, len(m))
	for _, err := range m {
		errs = append(errs, err)
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}
