package validator

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RoundTripsUTF8 reports whether value survives a strict UTF-8 decode unchanged.
// The decoder substitutes U+FFFD for every invalid sequence, including
// encoded UTF-16 surrogate halves, so any substitution shows up as a mismatch.
func RoundTripsUTF8(value string) bool {
	decoded, _, err := transform.String(unicode.UTF8.NewDecoder(), value)
	if err != nil {
		return false
	}
	return decoded == value
}

// ValidUTF8 validates that a string is well-formed UTF-8 text.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return RoundTripsUTF8(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains invalid characters",
			Kind:           ErrInvalidEncoding,
			TranslationKey: "validation.encoding",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
