package hangul

import (
	"regexp"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const addressMaxLen = 200

var addressRegex = regexp.MustCompile(`^[\x{AC00}-\x{D7A3}0-9` + spaceClass + `\-,()]+$`)

// ValidateAddress validates an optional Korean street address: Hangul, digits,
// whitespace, hyphens, commas and parentheses, at most 200 characters.
func ValidateAddress(address string) Result {
	address = sanitizer.Trim(address)
	if address == "" {
		return valid("")
	}

	return check(address,
		encodingRule(address),
		localize(validator.Matches("", address, addressRegex, "address"), MsgAddressFormat, KeyAddressFormat),
		localize(validator.MaxLen("", address, addressMaxLen), MsgAddressLength, KeyAddressLength),
	)
}
