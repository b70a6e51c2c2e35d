package formapi

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/i18n"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const keyValidationFailed = "api.validation_failed"

// Localizer renders validation errors in a given language. Without a
// translator the default Korean messages are returned unchanged.
type Localizer struct {
	tr *i18n.Translator
}

func NewLocalizer(tr *i18n.Translator) *Localizer {
	return &Localizer{tr: tr}
}

// Message translates err for lang, falling back to err.Message when the
// catalog has no entry for its key.
func (l *Localizer) Message(lang string, err validator.ValidationError) string {
	if l == nil || l.tr == nil || err.TranslationKey == "" {
		return err.Message
	}
	return l.tr.Td(lang, err.TranslationKey, err.Message, translationArgs(err.TranslationValues)...)
}

// Text translates a plain catalog key, returning fallback when missing.
func (l *Localizer) Text(lang, key, fallback string) string {
	if l == nil || l.tr == nil {
		return fallback
	}
	return l.tr.Td(lang, key, fallback)
}

// Ready reports whether the catalog can localize API messages. A nil
// translator is ready since the built-in Korean messages need no catalog.
func (l *Localizer) Ready() error {
	if l == nil || l.tr == nil {
		return nil
	}
	lang := l.tr.DefaultLanguage()
	if !l.tr.HasTranslation(lang, keyValidationFailed) {
		return fmt.Errorf("%w: %q lacks %s", errCatalogMissing, lang, keyValidationFailed)
	}
	return nil
}

// Details renders every failure of res as field -> messages.
func (l *Localizer) Details(lang string, res hangul.FormResult) map[string][]string {
	failures := res.Failures()
	out := make(map[string][]string, len(failures))
	for _, err := range failures {
		out[err.Field] = append(out[err.Field], l.Message(lang, err))
	}
	return out
}

// Errors is Details flattened to one message per field.
func (l *Localizer) Errors(lang string, res hangul.FormResult) map[string]string {
	out := make(map[string]string, len(res.Errors))
	for _, err := range res.Failures() {
		out[err.Field] = l.Message(lang, err)
	}
	return out
}

// translationArgs flattens values into sorted key/value pairs.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, cast.ToString(values[k]))
	}
	return args
}
