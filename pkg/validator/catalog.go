package validator

import (
	"context"
	"embed"
	"errors"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

//go:embed locales
var locales embed.FS

// LoadCatalog loads the built-in message catalog (English and Portuguese).
// Pass the result to Schema.Localize.
func LoadCatalog(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"), opts...)
	if err != nil {
		return nil, errors.Join(ErrLoadingCatalog, err)
	}
	return tr, nil
}
