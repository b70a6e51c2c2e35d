package validator

import "fmt"

// Numeric is the set of types the numeric rules accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			Kind:           ErrOutOfRange,
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// NoError turns the result of a parse into a rule. The message is the
// parse error.
func NoError(field string, err error) Rule {
	rule := Rule{Check: func() bool { return err == nil }}
	if err != nil {
		rule.Error = ValidationError{
			Field:          field,
			Message:        err.Error(),
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.format",
			TranslationValues: map[string]any{
				"field": field,
			},
		}
	}
	return rule
}
