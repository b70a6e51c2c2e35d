package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "ko"

// Translator resolves translation keys for a language.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations through adapter and applies options.
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

	for lang, values := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if values == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLanguage returns the language used when none is requested.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// lookup traverses a nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// HasTranslation checks if a string translation exists for the language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.find(lang, key)
	return ok
}

func (t *Translator) find(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	val, ok := lookup(langMap, key)
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

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes %{name} placeholders from key/value pairs.
// Unknown placeholders are kept; a trailing odd argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting key/value pairs from args.
//
//	// with "welcome": "Hello, %{name}!"
//	tr.T("en", "welcome", "name", "John") // "Hello, John!"
//
// Missing languages fall back to the default language. Missing keys return
// the key itself when fallback to key is enabled (the default), or "".
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.find(lang, key); ok {
		return format(tmpl, args)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.find(t.defaultLang, key); ok {
			return format(tmpl, args)
		}
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Td is T with an explicit default used when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.find(lang, key); ok {
		return format(tmpl, args)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.find(t.defaultLang, key); ok {
			return format(tmpl, args)
		}
	}
	return format(defaultValue, args)
}

// Tc translates key for the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
