package hangul

import (
	"regexp"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const emailMaxLen = 100

// local@domain.tld: exactly one @ and at least one dot after it.
var emailRegex = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)

// ValidateEmail validates an optional e-mail address. The sanitized value is
// trimmed and lower-cased.
func ValidateEmail(email string) Result {
	// Lower-casing rewrites invalid bytes as U+FFFD, so the guard sees the raw input.
	if res := ValidateUTF8(email); !res.Valid {
		return res
	}

	email = sanitizer.TrimToLower(email)
	if email == "" {
		return valid("")
	}

	return check(email,
		localize(validator.Matches("", email, emailRegex, "email"), MsgEmailFormat, KeyEmailFormat),
		localize(validator.MaxLen("", email, emailMaxLen), MsgEmailLength, KeyEmailLength),
	)
}
