package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// Matcher picks the best supported language for a list of client preferences.
type Matcher struct {
	supported []string
	matcher   language.Matcher
}

// NewMatcher builds a matcher for the given language codes. Codes that do not
// parse as BCP 47 tags are skipped.
func NewMatcher(supported ...string) *Matcher {
	m := &Matcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.supported = append(m.supported, strings.ToLower(code))
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Match returns the supported code closest to lang ("en-US" -> "en"),
// or "" when nothing matches.
func (m *Matcher) Match(lang string) string {
	if m.matcher == nil || lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	return m.match(tag)
}

// MatchAcceptLanguage negotiates an Accept-Language header value honouring
// quality weights. It returns "" when no supported language is acceptable.
func (m *Matcher) MatchAcceptLanguage(header string) string {
	if m.matcher == nil || header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return m.match(tags...)
}

func (m *Matcher) match(tags ...language.Tag) string {
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(m.supported) {
		return ""
	}
	return m.supported[idx]
}

// ParseAcceptLanguage returns the best match for header among supportedLangs,
// or defaultLang.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if lang := NewMatcher(supportedLangs...).MatchAcceptLanguage(header); lang != "" {
		return lang
	}
	return defaultLang
}
