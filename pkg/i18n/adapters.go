package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter defines how translations are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter uses an in-memory map as the translation source.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(a.Data))
	for lang, messages := range a.Data {
		result[NormalizeLanguage(lang)] = messages
	}
	return result, nil
}

// FSAdapter loads every YAML and JSON file in one directory of a filesystem,
// usually an embed.FS. Files are merged per language; later files win on key
// conflicts at the top level.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns nil if fsys is nil.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := a.processFile(ctx, parser, path.Join(a.dir, entry.Name()), all); err != nil {
			return nil, err
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoCatalogFiles, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) processFile(ctx context.Context, parser Parser, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: catalog file '%s' is empty", ErrFailedToParseFile, filePath)
	}

	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
	}

	for lang, messages := range translations {
		if all[lang] == nil {
			all[lang] = make(map[string]any, len(messages))
		}
		maps.Copy(all[lang], messages)
	}
	return nil
}
