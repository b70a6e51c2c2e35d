package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a single validation error with translation support.
// Kind classifies the failure (see errors.go) and is returned by Unwrap, so
// callers can use errors.Is(err, ErrInvalidLength) and similar checks.
type ValidationError struct {
	Field             string
	Message           string
	Kind              error
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Kind
}

// WithField returns a copy of the error bound to the given field name.
func (e ValidationError) WithField(field string) ValidationError {
	e.Field = field
	if e.TranslationValues != nil {
		values := make(map[string]any, len(e.TranslationValues)+1)
		for k, v := range e.TranslationValues {
			values[k] = v
		}
		values["field"] = field
		e.TranslationValues = values
	}
	return e
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed for any collection, and otherwise matches the
// kinds of the contained errors.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Sort orders the errors by field name, keeping the relative order of errors
// that belong to the same field.
func (ve ValidationErrors) Sort() {
	sort.SliceStable(ve, func(i, j int) bool {
		return ve[i].Field < ve[j].Field
	})
}

// Map returns field name to messages, the shape used by JSON error details.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ApplyFirst executes rules in order and stops at the first failure.
// Use it when later rules only make sense once earlier ones hold, e.g. a length
// check that should not run on a value with the wrong character class.
func ApplyFirst(rules ...Rule) *ValidationError {
	for _, rule := range rules {
		if !rule.Check() {
			err := rule.Error
			return &err
		}
	}
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
