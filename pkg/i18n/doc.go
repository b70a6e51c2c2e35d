// Package i18n translates user-facing messages, most notably validation
// errors, into the language a client asks for.
//
// Translations are nested maps keyed by language code and loaded once through
// a TranslationAdapter. Ready-made adapters cover in-memory maps and any
// fs.FS (typically an embed.FS with YAML or JSON files). Keys use dot
// notation ("hangul.name.format") and values may contain named placeholders
// in the form %{name}.
//
// ChainAdapter layers sources key by key, so a directory of operator
// overrides can replace one message without copying the whole catalog.
// An FSAdapter with a nil parser accepts YAML and JSON files side by side.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translations.FS, ".")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("ko"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("en", "hangul.text.length", "max", "500")
//
// # Language negotiation
//
// Middleware stores the negotiated language in the request context.
// DefaultLangExtractor checks the "lang" query parameter, the "lang" cookie
// and finally the Accept-Language header, matched against the supported
// languages with golang.org/x/text/language.
package i18n
