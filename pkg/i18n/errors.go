package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("i18n: adapter is nil")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Filesystem operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
	ErrFailedToReadDirectory        = errors.New("failed to read catalog directory")
	ErrFailedToReadFile             = errors.New("failed to read catalog file")
	ErrFailedToParseFile            = errors.New("failed to parse catalog file")
	ErrNoCatalogFiles               = errors.New("no catalog files found")
)
