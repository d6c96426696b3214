package validator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func contactSchema() validator.Schema {
	return validator.MustDefineSchema(
		validator.Field("name", validator.Required(), validator.MinLength(3)),
		validator.Field("email", validator.Required(), validator.Email()),
		validator.Field("message", validator.Required(), validator.MinLength(10)),
	)
}

func profileSchema() validator.Schema {
	return validator.MustDefineSchema(
		validator.Field("fullName", validator.MinLength(3), validator.Letters()),
		validator.Field("email", validator.RFCEmail()),
		validator.Field("age", validator.Integer(), validator.Range(18, 120)),
		validator.Field("website", validator.OptionalEmptyOk(), validator.URL()),
	)
}

func codeOf(t *testing.T, err error) validator.Code {
	t.Helper()
	var verr validator.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Code
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	t.Run("reports the first failing rule with rendered message", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateField(contactSchema(), "name", "Jo")

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, validator.ValidationError{
			Field:          "name",
			Code:           validator.CodeTooShort,
			Message:        "name must be at least 3 characters",
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": "name",
				"min":   3,
			},
		}, verr)
		assert.Equal(t, "name must be at least 3 characters", err.Error())
	})

	t.Run("required short-circuits later rules", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "   ", "\t\n"} {
			err := validator.ValidateField(contactSchema(), "name", raw)
			assert.Equal(t, validator.CodeRequired, codeOf(t, err), "raw %q", raw)
			assert.Equal(t, "name is required", err.Error())
		}
	})

	t.Run("valid values pass", func(t *testing.T) {
		t.Parallel()
		s := contactSchema()
		assert.NoError(t, validator.ValidateField(s, "name", "Joe"))
		assert.NoError(t, validator.ValidateField(s, "email", "joe@example.com"))
		assert.NoError(t, validator.ValidateField(s, "message", "0123456789"))
	})

	t.Run("message shorter than ten characters", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateField(contactSchema(), "message", "123456789")
		assert.Equal(t, validator.CodeTooShort, codeOf(t, err))
	})

	t.Run("email shape", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(contactSchema(), "email", "a@b")))
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(profileSchema(), "email", "a@b")))
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(profileSchema(), "email", "")))
		assert.NoError(t, validator.ValidateField(profileSchema(), "email", "first.last+tag@mail.example.org"))
	})

	t.Run("letters and spaces only", func(t *testing.T) {
		t.Parallel()
		s := profileSchema()
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(s, "fullName", "Jo3")))
		assert.Equal(t, validator.CodeTooShort, codeOf(t, validator.ValidateField(s, "fullName", "Jo")))
		assert.Equal(t, validator.CodeTooShort, codeOf(t, validator.ValidateField(s, "fullName", "")))
		assert.NoError(t, validator.ValidateField(s, "fullName", "Ada Lovelace"))
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateField(contactSchema(), "phone", "123")
		assert.ErrorIs(t, err, validator.ErrUnknownField)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestValidateField_Coercion(t *testing.T) {
	t.Parallel()
	s := profileSchema()

	tests := []struct {
		raw  string
		want validator.Code
	}{
		{raw: "abc", want: validator.CodeInvalidType},
		{raw: "", want: validator.CodeInvalidType},
		{raw: "18.5", want: validator.CodeInvalidType},
		{raw: "17", want: validator.CodeOutOfRange},
		{raw: "121", want: validator.CodeOutOfRange},
		{raw: "-5", want: validator.CodeOutOfRange},
		{raw: "25"},
		{raw: " 30 "},
		{raw: "18"},
		{raw: "120"},
	}

	for _, tt := range tests {
		err := validator.ValidateField(s, "age", tt.raw)
		if tt.want == "" {
			assert.NoError(t, err, "raw %q", tt.raw)
			continue
		}
		assert.Equal(t, tt.want, codeOf(t, err), "raw %q", tt.raw)
	}

	err := validator.ValidateField(s, "age", "17")
	assert.Equal(t, "age must be between 18 and 120", err.Error())
	err = validator.ValidateField(s, "age", "abc")
	assert.Equal(t, "age must be a whole number", err.Error())
}

func TestValidateField_OptionalEmpty(t *testing.T) {
	t.Parallel()

	t.Run("empty website is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.ValidateField(profileSchema(), "website", ""))
	})

	t.Run("whitespace is not empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(profileSchema(), "website", " ")))
	})

	t.Run("non-empty value still checked", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.CodeInvalidFormat, codeOf(t, validator.ValidateField(profileSchema(), "website", "example")))
		assert.NoError(t, validator.ValidateField(profileSchema(), "website", "https://example.com/about?x=1"))
	})

	t.Run("position in the sequence does not matter", func(t *testing.T) {
		t.Parallel()
		s := validator.MustDefineSchema(
			validator.Field("nickname", validator.MinLength(3), validator.OptionalEmptyOk()),
		)
		assert.NoError(t, validator.ValidateField(s, "nickname", ""))
		assert.Error(t, validator.ValidateField(s, "nickname", "ab"))
	})
}

func TestValidateField_Pure(t *testing.T) {
	t.Parallel()
	s := profileSchema()

	for _, name := range s.Fields() {
		for _, raw := range []string{"", "Jo3", "17", "a@b", "https://x.io"} {
			first := validator.ValidateField(s, name, raw)
			second := validator.ValidateField(s, name, raw)
			assert.Equal(t, first, second, "field %s raw %q", name, raw)
		}
	}
}

func TestValidateField_LengthCountsCharacters(t *testing.T) {
	t.Parallel()
	s := validator.MustDefineSchema(
		validator.Field("city", validator.MinLength(4), validator.MaxLength(4)),
	)

	assert.NoError(t, validator.ValidateField(s, "city", "Jose\u0301"), "combining accent counts as one character")
	assert.NoError(t, validator.ValidateField(s, "city", "Lodz"))
	assert.Equal(t, validator.CodeTooLong, codeOf(t, validator.ValidateField(s, "city", "Paris")))
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("empty required-only form reports every field", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidateForm(contactSchema(), validator.Values{})

		want := map[string]string{
			"name":    "name is required",
			"email":   "email is required",
			"message": "message is required",
		}
		if diff := cmp.Diff(want, errs.Messages()); diff != "" {
			t.Fatalf("unexpected messages (-want +got):\n%s", diff)
		}
	})

	t.Run("optional fields produce no error when empty", func(t *testing.T) {
		t.Parallel()
		s := validator.MustDefineSchema(
			validator.Field("name", validator.Required()),
			validator.Field("website", validator.OptionalEmptyOk(), validator.URL()),
		)
		errs := validator.ValidateForm(s, validator.Values{"name": "", "website": ""})
		assert.Equal(t, []string{"name"}, errs.Fields())
	})

	t.Run("passing fields are absent", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidateForm(profileSchema(), validator.Values{
			"fullName": "Jo3",
			"email":    "ada@example.com",
			"age":      "abc",
			"website":  "",
			"unknown":  "ignored",
		})

		want := map[string]validator.Code{
			"fullName": validator.CodeInvalidFormat,
			"age":      validator.CodeInvalidType,
		}
		got := make(map[string]validator.Code, len(errs))
		for field, err := range errs {
			got[field] = err.Code
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected codes (-want +got):\n%s", diff)
		}
		assert.False(t, errs.Has("email"))
		assert.False(t, errs.Has("website"))
	})

	t.Run("valid form yields an empty map", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidateForm(contactSchema(), validator.Values{
			"name":    "Joe",
			"email":   "joe@example.com",
			"message": "Hello there, world",
		})
		assert.True(t, errs.IsEmpty())
		assert.NoError(t, errs.Err())
	})

	t.Run("agrees with per-field validation", func(t *testing.T) {
		t.Parallel()
		s := profileSchema()
		values := validator.Values{"fullName": "Jo", "email": "x", "age": "200", "website": "nope"}
		errs := validator.ValidateForm(s, values)
		for _, name := range s.Fields() {
			err := validator.ValidateField(s, name, values[name])
			if err == nil {
				assert.False(t, errs.Has(name))
				continue
			}
			assert.Equal(t, err, errs[name])
		}
	})
}
