package i18n

import (
	"log/slog"
)

// Option configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is not available.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang = NormalizeLanguage(lang); lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether T returns the key when a message is missing. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used for load and missing-message reports.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing messages are logged. Default is false.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}
