package validator

import (
	"fmt"
	"slices"
)

// FieldSpec declares one field of a schema: its ordered rules and default raw value.
type FieldSpec struct {
	name  string
	rules []Rule
	def   string
}

// Field declares a field validated by rules in the given order.
func Field(name string, rules ...Rule) FieldSpec {
	return FieldSpec{name: name, rules: rules}
}

// Default sets the raw value the field is reset to after a successful submission.
func (f FieldSpec) Default(v string) FieldSpec {
	f.def = v
	return f
}

// Schema maps field names to ordered rule sequences. It is immutable: every
// accessor returns copies and every transformation returns a new Schema.
type Schema struct {
	fields []FieldSpec
	index  map[string]int
}

// DefineSchema validates the field declarations and builds a Schema. Field
// order is kept for iteration only; it does not affect validation results.
func DefineSchema(fields ...FieldSpec) (Schema, error) {
	s := Schema{
		fields: make([]FieldSpec, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.name == "" {
			return Schema{}, fmt.Errorf("%w: field name is empty", ErrInvalidSchema)
		}
		if _, dup := s.index[f.name]; dup {
			return Schema{}, fmt.Errorf("%w: field %q declared twice", ErrInvalidSchema, f.name)
		}
		if err := checkRules(f.rules); err != nil {
			return Schema{}, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, f.name, err)
		}

		s.index[f.name] = len(s.fields)
		s.fields = append(s.fields, FieldSpec{name: f.name, rules: slices.Clone(f.rules), def: f.def})
	}

	return s, nil
}

// MustDefineSchema is like DefineSchema but panics on an invalid definition.
// Intended for package-level schema declarations.
func MustDefineSchema(fields ...FieldSpec) Schema {
	s, err := DefineSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("failed to define schema: %v", err))
	}
	return s
}

func checkRules(rules []Rule) error {
	coerced := false
	for i, r := range rules {
		switch r.kind {
		case KindRequired, KindOptionalEmptyOk:
		case KindMinLength:
			if r.min < 0 {
				return fmt.Errorf("rule %d: negative minimum length %d", i, r.min)
			}
		case KindMaxLength:
			if r.max < 0 {
				return fmt.Errorf("rule %d: negative maximum length %d", i, r.max)
			}
		case KindPattern:
			if r.pattern == nil {
				return fmt.Errorf("rule %d: pattern is nil", i)
			}
		case KindCoerce:
			if r.coerce != CoerceInt {
				return fmt.Errorf("rule %d: unsupported coercion %d", i, r.coerce)
			}
			coerced = true
		case KindRange:
			if !coerced {
				return fmt.Errorf("rule %d: range requires a preceding coerce rule", i)
			}
			if r.min > r.max {
				return fmt.Errorf("rule %d: range minimum %d exceeds maximum %d", i, r.min, r.max)
			}
		default:
			return fmt.Errorf("rule %d: unknown rule kind %d", i, r.kind)
		}
	}
	return nil
}

// ExtractFieldSchema returns a schema restricted to the named field.
// Validating the result at name is equivalent to validating the full schema at name.
func ExtractFieldSchema(s Schema, name string) (Schema, error) {
	i, ok := s.index[name]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return Schema{
		fields: []FieldSpec{s.fields[i]},
		index:  map[string]int{name: 0},
	}, nil
}

// Fields returns field names in declaration order.
func (s Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Rules returns a copy of the named field's rules, or nil for an unknown field.
func (s Schema) Rules(name string) []Rule {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return slices.Clone(s.fields[i].rules)
}

// Defaults returns the declared default raw value of every field.
func (s Schema) Defaults() Values {
	values := make(Values, len(s.fields))
	for _, f := range s.fields {
		values[f.name] = f.def
	}
	return values
}

// MessageSource provides message templates by language and key. *i18n.Translator satisfies it.
type MessageSource interface {
	Template(lang, key string) (string, bool)
}

// Localize returns a copy of s with rule templates taken from messages.
// For each rule the key "fields.<field>.<code>" is tried first, then the
// rule's translation key; rules without a catalog entry keep their template.
func (s Schema) Localize(messages MessageSource, lang string) Schema {
	out := Schema{
		fields: make([]FieldSpec, len(s.fields)),
		index:  make(map[string]int, len(s.index)),
	}
	for i, f := range s.fields {
		rules := slices.Clone(f.rules)
		for j, r := range rules {
			code := r.Code()
			if code == "" || messages == nil {
				continue
			}
			if tmpl, ok := messages.Template(lang, "fields."+f.name+"."+string(code)); ok {
				rules[j].message = tmpl
			} else if tmpl, ok := messages.Template(lang, r.key); ok {
				rules[j].message = tmpl
			}
		}
		out.fields[i] = FieldSpec{name: f.name, rules: rules, def: f.def}
		out.index[f.name] = i
	}
	return out
}
