package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Translator resolves message templates from a catalog loaded once at
// construction. It is read-only afterwards and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the catalog from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "message catalog loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("message catalog is empty")
		return nil
	}
	for lang, messages := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if messages == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// SupportedLanguages returns the sorted language codes present in the catalog.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Language resolves lang to a catalog language, falling back to the default language.
func (t *Translator) Language(lang string) string {
	if lang = NormalizeLanguage(lang); lang != "" {
		if _, ok := t.translations[lang]; ok {
			return lang
		}
	}
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch v := next.(type) {
		case map[string]any:
			current = v
		case map[any]any:
			current = make(map[string]any, len(v))
			for k, val := range v {
				if ks, ok := k.(string); ok {
					current[ks] = val
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// Template returns the raw, unsubstituted message for key. The lookup is exact:
// no default-language or key fallback applies.
func (t *Translator) Template(lang, key string) (string, bool) {
	langMap, ok := t.translations[NormalizeLanguage(lang)]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// HasTranslation reports whether a string message exists for lang and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.Template(lang, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from args
// given as key/value pairs:
//
//	tr.T("en", "validation.min_length", "field", "name", "min", "3")
//
// An unsupported language resolves to the default language. A missing message
// returns the key (with substitutions) when fallback to key is enabled, and
// an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	lang = t.Language(lang)

	if tmpl, ok := t.Template(lang, key); ok {
		return Sprintf(tmpl, Params(args...))
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return Sprintf(key, Params(args...))
	}
	return ""
}

// Params converts key/value pairs into a parameter map. A trailing odd argument is ignored.
func Params(args ...string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Sprintf substitutes "%{key}" placeholders in tmpl. Unknown placeholders are kept verbatim.
func Sprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
