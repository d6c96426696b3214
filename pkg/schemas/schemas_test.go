package schemas_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/schemas"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestByName(t *testing.T) {
	t.Parallel()

	s, err := schemas.ByName("contact")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "email", "message"}, s.Fields())

	s, err = schemas.ByName("profile")
	require.NoError(t, err)
	assert.Equal(t, []string{"fullName", "email", "age", "website"}, s.Fields())

	_, err = schemas.ByName("signup")
	assert.ErrorIs(t, err, schemas.ErrUnknownSchema)

	assert.Equal(t, []string{"contact", "profile"}, schemas.Names())
}

func TestContact(t *testing.T) {
	t.Parallel()

	s := schemas.Contact()

	t.Run("short name", func(t *testing.T) {
		err := validator.ValidateField(s, "name", "Jo")
		require.Error(t, err)
		assert.Equal(t, "name must be at least 3 characters", err.Error())
	})

	t.Run("email shape", func(t *testing.T) {
		err := validator.ValidateField(s, "email", "a@b")
		require.Error(t, err)
		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, validator.CodeInvalidFormat, verr.Code)

		assert.NoError(t, validator.ValidateField(s, "email", "a@b.c"))
	})

	t.Run("message length", func(t *testing.T) {
		var verr validator.ValidationError
		require.ErrorAs(t, validator.ValidateField(s, "message", "123456789"), &verr)
		assert.Equal(t, validator.CodeTooShort, verr.Code)
		assert.NoError(t, validator.ValidateField(s, "message", "1234567890"))
	})

	t.Run("all empty", func(t *testing.T) {
		errs := validator.ValidateForm(s, validator.Values{})
		assert.Equal(t, []string{"email", "message", "name"}, errs.Fields())
		for _, f := range errs.Fields() {
			assert.Equal(t, validator.CodeRequired, errs[f].Code)
		}
	})

	t.Run("valid", func(t *testing.T) {
		errs := validator.ValidateForm(s, validator.Values{
			"name":    "Ana",
			"email":   "ana@example.com",
			"message": "Hello there, world",
		})
		assert.True(t, errs.IsEmpty())
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()

	s := schemas.Profile()

	tests := []struct {
		name  string
		field string
		raw   string
		code  validator.Code
	}{
		{"name too short", "fullName", "Jo", validator.CodeTooShort},
		{"name with digit", "fullName", "Jo3", validator.CodeInvalidFormat},
		{"valid name", "fullName", "John Doe", ""},
		{"age not a number", "age", "abc", validator.CodeInvalidType},
		{"age empty", "age", "", validator.CodeInvalidType},
		{"age too young", "age", "17", validator.CodeOutOfRange},
		{"age too old", "age", "121", validator.CodeOutOfRange},
		{"age valid", "age", "25", ""},
		{"age bounds", "age", "18", ""},
		{"website empty", "website", "", ""},
		{"website invalid", "website", "example", validator.CodeInvalidFormat},
		{"website valid", "website", "https://example.com", ""},
		{"email invalid", "email", "a@b", validator.CodeInvalidFormat},
		{"email valid", "email", "john.doe@example.org", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField(s, tt.field, tt.raw)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			var verr validator.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.code, verr.Code)
		})
	}
}

func TestProfileLocalized(t *testing.T) {
	t.Parallel()

	catalog, err := validator.LoadCatalog(context.Background())
	require.NoError(t, err)

	s := schemas.Profile().Localize(catalog, "pt")

	err = validator.ValidateField(s, "age", "17")
	require.Error(t, err)
	assert.Equal(t, "A idade deve estar entre 18 e 120 anos.", err.Error())

	err = validator.ValidateField(s, "age", "abc")
	require.Error(t, err)
	assert.Equal(t, "Idade deve ser um número.", err.Error())

	// English catalog keeps the generic templates.
	en := schemas.Contact().Localize(catalog, i18n.DefaultLanguage)
	err = validator.ValidateField(en, "name", "")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "name"))
}
