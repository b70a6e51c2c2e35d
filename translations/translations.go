// Package translations embeds the message catalogs shipped with the binary.
package translations

import (
	"context"
	"embed"
	"os"

	"github.com/dmitrymomot/hangulform/pkg/i18n"
)

//go:embed *.yaml
var FS embed.FS

func embedded() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), FS, ".")
}

// NewTranslator loads the embedded catalogs.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, embedded(), opts...)
}

// Load is NewTranslator with the YAML and JSON catalogs found in
// overridesDir merged on top. An empty overridesDir loads the embedded
// catalogs only.
func Load(ctx context.Context, overridesDir string, opts ...i18n.Option) (*i18n.Translator, error) {
	if overridesDir == "" {
		return NewTranslator(ctx, opts...)
	}
	chain := i18n.ChainAdapter{
		embedded(),
		i18n.NewFSAdapter(nil, os.DirFS(overridesDir), "."),
	}
	return i18n.NewTranslator(ctx, chain, opts...)
}
