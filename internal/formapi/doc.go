// Package formapi exposes the hangul form engine over HTTP.
//
// Routes:
//
//	POST /v1/forms/validate          validate a whole record (JSON or urlencoded)
//	POST /v1/fields/{field}/validate validate {"value": ...} as the named field
//	GET  /v1/fields                  list the dispatch table
//	GET  /health/live, /health/ready probes
//
// Validation messages are translated to the language negotiated from the
// "lang" query parameter, the "lang" cookie or Accept-Language.
package formapi
