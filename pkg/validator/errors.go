package validator

import "errors"

var (
	// ErrInvalidSchema is returned by DefineSchema when a field or rule definition is malformed.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnknownField is returned when a field name is not declared by the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrLoadingCatalog is returned when the embedded message catalog cannot be loaded.
	ErrLoadingCatalog = errors.New("failed to load message catalog")
)
