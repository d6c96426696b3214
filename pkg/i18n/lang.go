package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or the requested one is not in the catalog.
const DefaultLanguage = "en"

// NormalizeLanguage reduces a BCP 47 tag to its lower-case base language:
// "pt-BR" and "PT_br" both become "pt". Unparseable input is lower-cased as is.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return strings.ToLower(lang)
	}
	base, _ := tag.Base()
	return base.String()
}
