package hangul

import (
	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const (
	phoneDigits       = 11
	phoneMobilePrefix = "010"
)

// ValidatePhone validates an optional Korean mobile number. Any punctuation or
// spacing is accepted on input; the sanitized value is always formatted as
// 010-XXXX-XXXX. Input without digits is treated as not provided and yields a
// valid, empty result.
func ValidatePhone(phone string) Result {
	if res := ValidateUTF8(phone); !res.Valid {
		return res
	}

	digits := sanitizer.NormalizePhone(phone)
	if digits == "" {
		return valid("")
	}

	return check(sanitizer.FormatPhoneKR(digits),
		localize(validator.Len("", digits, phoneDigits), MsgPhoneLength, KeyPhoneLength),
		localize(validator.StartsWith("", digits, phoneMobilePrefix), MsgPhonePrefix, KeyPhonePrefix),
	)
}
