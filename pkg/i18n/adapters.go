package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file of a directory in fsys that a parser supports.
// Files for the same language are merged in directory order.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an adapter over fsys. Use "." for the root directory.
// A nil parser picks one per file with NewParserForFile, so YAML and JSON
// catalogs can share a directory.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) parserFor(name string) Parser {
	if a.parser == nil {
		return NewParserForFile(name)
	}
	if ext := path.Ext(name); ext != "" && a.parser.SupportsFileExtension(ext) {
		return a.parser
	}
	return nil
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
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
		parser := a.parserFor(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		merge(all, translations)
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

// ChainAdapter loads each adapter in turn and merges the results key by key,
// so a later source can replace a single nested message without restating
// its siblings.
type ChainAdapter []TranslationAdapter

func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, adapter := range c {
		if adapter == nil {
			return nil, ErrNilAdapter
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(all, translations)
	}
	return all, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, values := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(values))
		}
		mergeTree(dst[lang], values)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		next, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		cur, ok := dst[k].(map[string]any)
		if !ok {
			cur = make(map[string]any, len(next))
			dst[k] = cur
		}
		mergeTree(cur, next)
	}
}
