package hangul

import "github.com/dmitrymomot/hangulform/pkg/validator"

// Result is the outcome of a single grammar.
// Err is nil exactly when Valid is true; Sanitized is empty when Valid is false.
type Result struct {
	Valid     bool
	Sanitized string
	Err       *validator.ValidationError
}

// Grammar validates one raw value. Grammars are stateless and safe for
// concurrent use.
type Grammar func(value string) Result

// Message returns the human-readable error message, or "" for valid results.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

// Error returns the failure as an error value, or nil for valid results.
func (r Result) Error() error {
	if r.Err == nil {
		return nil
	}
	return *r.Err
}

func valid(sanitized string) Result {
	return Result{Valid: true, Sanitized: sanitized}
}

func invalid(err validator.ValidationError) Result {
	return Result{Err: &err}
}

// check applies rules in order and reports the first failure.
func check(sanitized string, rules ...validator.Rule) Result {
	if err := validator.ApplyFirst(rules...); err != nil {
		return Result{Err: err}
	}
	return valid(sanitized)
}

// localize replaces the generic English message of a rule with the field
// specific one and points the translation key at the hangul catalog.
func localize(rule validator.Rule, message, key string) validator.Rule {
	rule.Error.Message = message
	rule.Error.TranslationKey = key
	return rule
}
