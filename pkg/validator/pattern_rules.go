package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches validates a value against a precompiled pattern. Blank values never match.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// StartsWith validates that a string starts with a literal prefix.
func StartsWith(field, value, prefix string) Rule {
	return Rule{
		Check: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must start with %s", prefix),
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.starts_with",
			TranslationValues: map[string]any{
				"field":  field,
				"prefix": prefix,
			},
		},
	}
}
