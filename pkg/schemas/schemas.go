// Package schemas declares the fixed forms served by the engine: a contact
// form and a user profile form.
package schemas

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrUnknownSchema is returned by ByName for a name with no schema.
var ErrUnknownSchema = errors.New("schemas: unknown schema")

const (
	ContactName = "contact"
	ProfileName = "profile"
)

var (
	contact = validator.MustDefineSchema(
		validator.Field("name", validator.Required(), validator.MinLength(3)),
		validator.Field("email", validator.Required(), validator.Email()),
		validator.Field("message", validator.Required(), validator.MinLength(10)),
	)

	profile = validator.MustDefineSchema(
		validator.Field("fullName", validator.MinLength(3), validator.Letters()),
		validator.Field("email", validator.RFCEmail()),
		validator.Field("age", validator.Integer(), validator.Range(18, 120)),
		validator.Field("website", validator.OptionalEmptyOk(), validator.URL()),
	)
)

// Contact returns the contact form schema: name, email and message, all required.
func Contact() validator.Schema { return contact }

// Profile returns the user profile schema. The website field may be left empty.
func Profile() validator.Schema { return profile }

// Names returns the registered schema names, sorted.
func Names() []string {
	return []string{ContactName, ProfileName}
}

// ByName returns the schema registered under name.
func ByName(name string) (validator.Schema, error) {
	switch name {
	case ContactName:
		return contact, nil
	case ProfileName:
		return profile, nil
	default:
		return validator.Schema{}, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
}
