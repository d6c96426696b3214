// Package validator implements declarative, per-field validation of raw form
// input.
//
// A Schema maps each field name to an ordered sequence of Rules. Rules are a
// small tagged set: Required, MinLength, MaxLength, Pattern, Coerce, Range
// and OptionalEmptyOk. Each one carries its own message template and a
// translation key.
//
//	schema := validator.MustDefineSchema(
//	    validator.Field("name", validator.Required(), validator.MinLength(3)),
//	    validator.Field("age", validator.Integer(), validator.Range(18, 120)),
//	    validator.Field("website", validator.OptionalEmptyOk(), validator.URL()),
//	)
//
// # Evaluation
//
// ValidateField runs a field's rules in order and stops at the first failure,
// so a field reports at most one message. OptionalEmptyOk makes an empty raw
// value valid before any other rule runs. Coerce parses the value (currently
// into an int); a failed parse reports invalid_type, otherwise later Range
// rules see the typed value. DefineSchema rejects a Range that is not
// preceded by a Coerce.
//
// ValidateForm validates every field and returns an ErrorMap holding only the
// failing fields. Both functions are pure: the same schema and values always
// produce the same result.
//
// ExtractFieldSchema restricts a schema to one field; rules never look
// outside their own field, so the restricted schema validates that field
// exactly like the full one.
//
// # Messages
//
// Templates use %{field}, %{min}, %{max} and %{format} placeholders.
// LoadCatalog returns the built-in English/Portuguese catalog and
// Schema.Localize swaps templates for a language, preferring field-specific
// entries ("fields.age.invalid_type") over generic ones ("validation.integer").
//
// # Error Handling
//
// Field failures are ValidationError values carrying a Code (required,
// too_short, too_long, invalid_format, invalid_type, out_of_range).
// ErrorMap.Err converts a result into ValidationErrors, which implements
// error and works with ExtractValidationErrors and IsValidationError.
package validator
