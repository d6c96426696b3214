package validator

import (
	"fmt"
	"slices"
)

// ValidateField evaluates the named field's rules against raw. It returns nil
// on success and a ValidationError for the first failing rule; later rules do
// not run. An unknown field yields an error wrapping ErrUnknownField.
func ValidateField(s Schema, name, raw string) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if verr, failed := validateSpec(s.fields[i], raw); failed {
		return verr
	}
	return nil
}

// ValidateForm validates every schema field against values and collects the
// failures. Passing fields are absent from the result. Missing entries are
// validated as the empty string; keys unknown to the schema are ignored.
func ValidateForm(s Schema, values Values) ErrorMap {
	errs := make(ErrorMap)
	for _, f := range s.fields {
		if verr, failed := validateSpec(f, values[f.name]); failed {
			errs[f.name] = verr
		}
	}
	return errs
}

func validateSpec(f FieldSpec, raw string) (ValidationError, bool) {
	if raw == "" && slices.ContainsFunc(f.rules, func(r Rule) bool { return r.kind == KindOptionalEmptyOk }) {
		return ValidationError{}, false
	}

	v := value{raw: raw}
	for _, r := range f.rules {
		if !r.check(&v) {
			return r.failure(f.name), true
		}
	}
	return ValidationError{}, false
}
