package i18n

import (
	"net/http"
	"strings"
)

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the query parameter, the cookie and
// the Accept-Language header (default names: "lang"). Values are matched
// against the supported languages; with none configured, explicit values are
// returned lower-cased and Accept-Language is ignored.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	matcher := NewMatcher(cfg.SupportedLangs...)
	validate := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > 35 {
			return ""
		}
		if len(cfg.SupportedLangs) == 0 {
			return strings.ToLower(lang)
		}
		return matcher.Match(lang)
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := validate(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := validate(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		return matcher.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	}
}
