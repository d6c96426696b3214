// Package i18n holds the fixed message catalog used to render validation
// messages.
//
// A Translator is loaded once from a TranslationAdapter (an in-memory map or
// a set of YAML/JSON files in an fs.FS, typically an embed.FS) and is
// read-only afterwards. Messages are templates with named placeholders in the
// form `%{name}`:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//	msg := tr.T("pt", "validation.required", "field", "email")
//
// Keys are dot-separated paths into the nested catalog ("fields.age.invalid_type").
// Language codes are normalised to their base tag, so "pt-BR" resolves to the
// "pt" catalog. Missing keys fall back to the key itself unless disabled with
// WithFallbackToKey(false).
package i18n
