package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

// Kind tags the variant of a Rule.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindMinLength
	KindMaxLength
	KindPattern
	KindCoerce
	KindRange
	KindOptionalEmptyOk
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindMinLength:
		return "min_length"
	case KindMaxLength:
		return "max_length"
	case KindPattern:
		return "pattern"
	case KindCoerce:
		return "coerce"
	case KindRange:
		return "range"
	case KindOptionalEmptyOk:
		return "optional_empty_ok"
	default:
		return "unknown"
	}
}

// CoerceKind selects the typed parse performed by a Coerce rule.
type CoerceKind int

const (
	CoerceInt CoerceKind = iota + 1
)

// Rule is one atomic constraint together with its failure message template.
// Templates may reference %{field}, %{min}, %{max} and %{format}.
type Rule struct {
	kind    Kind
	min     int
	max     int
	pattern *regexp.Regexp
	format  string
	coerce  CoerceKind
	message string
	key     string
}

func (r Rule) Kind() Kind { return r.kind }

// Code returns the failure code this rule reports; OptionalEmptyOk never fails and returns "".
func (r Rule) Code() Code {
	switch r.kind {
	case KindRequired:
		return CodeRequired
	case KindMinLength:
		return CodeTooShort
	case KindMaxLength:
		return CodeTooLong
	case KindPattern:
		return CodeInvalidFormat
	case KindCoerce:
		return CodeInvalidType
	case KindRange:
		return CodeOutOfRange
	default:
		return ""
	}
}

// Message returns the unrendered message template.
func (r Rule) Message() string { return r.message }

func (r Rule) TranslationKey() string { return r.key }

// WithMessage returns a copy of the rule using tmpl as its message template.
func (r Rule) WithMessage(tmpl string) Rule {
	r.message = tmpl
	return r
}

// Required fails when the value is empty after trimming whitespace.
func Required() Rule {
	return Rule{
		kind:    KindRequired,
		message: "%{field} is required",
		key:     "validation.required",
	}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int) Rule {
	return Rule{
		kind:    KindMinLength,
		min:     n,
		message: "%{field} must be at least %{min} characters",
		key:     "validation.min_length",
	}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int) Rule {
	return Rule{
		kind:    KindMaxLength,
		max:     n,
		message: "%{field} must be at most %{max} characters",
		key:     "validation.max_length",
	}
}

// Pattern fails when re does not match the raw value. format names the
// expected shape and is available to templates as %{format}.
func Pattern(re *regexp.Regexp, format string) Rule {
	return Rule{
		kind:    KindPattern,
		pattern: re,
		format:  format,
		message: "%{field} has an invalid format",
		key:     "validation.pattern",
	}
}

// MatchesRegex is Pattern for a regex given as a string. It panics if the expression does not compile.
func MatchesRegex(expr, format string) Rule {
	return Pattern(regexp.MustCompile(expr), format)
}

// Coerce parses the value into a typed one visible to later rules. A failed
// parse reports invalid_type and stops evaluation, so no range check sees an
// untyped value.
func Coerce(kind CoerceKind) Rule {
	return Rule{
		kind:    KindCoerce,
		coerce:  kind,
		message: "%{field} must be a whole number",
		key:     "validation.integer",
	}
}

// Integer is Coerce(CoerceInt).
func Integer() Rule {
	return Coerce(CoerceInt)
}

// Range fails when the coerced value is outside [min, max]. It must follow a Coerce rule.
func Range(min, max int) Rule {
	return Rule{
		kind:    KindRange,
		min:     min,
		max:     max,
		message: "%{field} must be between %{min} and %{max}",
		key:     "validation.range",
	}
}

// OptionalEmptyOk makes an empty raw value valid regardless of the other rules of the field.
func OptionalEmptyOk() Rule {
	return Rule{kind: KindOptionalEmptyOk}
}

// value is the rule input: the raw string plus the result of the last successful coercion.
type value struct {
	raw   string
	num   int
	typed bool
}

// length counts characters of the NFC form so precomposed and combining spellings agree.
func length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func (r Rule) check(v *value) bool {
	switch r.kind {
	case KindRequired:
		return strings.TrimSpace(v.raw) != ""
	case KindMinLength:
		return length(v.raw) >= r.min
	case KindMaxLength:
		return length(v.raw) <= r.max
	case KindPattern:
		return r.pattern.MatchString(v.raw)
	case KindCoerce:
		n, err := strconv.Atoi(strings.TrimSpace(v.raw))
		if err != nil {
			return false
		}
		v.num, v.typed = n, true
		return true
	case KindRange:
		return v.typed && v.num >= r.min && v.num <= r.max
	default:
		return true
	}
}

func (r Rule) params(field string) map[string]any {
	params := map[string]any{"field": field}
	switch r.kind {
	case KindMinLength:
		params["min"] = r.min
	case KindMaxLength:
		params["max"] = r.max
	case KindRange:
		params["min"] = r.min
		params["max"] = r.max
	case KindPattern:
		params["format"] = r.format
	}
	return params
}

func (r Rule) failure(field string) ValidationError {
	params := r.params(field)
	args := make(map[string]string, len(params))
	for k, v := range params {
		switch t := v.(type) {
		case string:
			args[k] = t
		case int:
			args[k] = strconv.Itoa(t)
		}
	}
	return ValidationError{
		Field:             field,
		Code:              r.Code(),
		Message:           i18n.Sprintf(r.message, args),
		TranslationKey:    r.key,
		TranslationValues: params,
	}
}
