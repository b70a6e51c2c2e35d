package i18n

import "net/http"

// LangExtractor determines the preferred language of a request.
// An empty result lets the caller fall back to its default.
type LangExtractor func(r *http.Request) string
