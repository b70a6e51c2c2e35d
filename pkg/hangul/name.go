package hangul

import (
	"regexp"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const (
	nameMinLen = 2
	nameMaxLen = 10
)

// Hangul syllables (U+AC00..U+D7A3) and Unicode whitespace.
var nameRegex = regexp.MustCompile(`^[\x{AC00}-\x{D7A3}` + spaceClass + `]+$`)

// ValidateName validates a required Korean personal name of 2 to 10
// characters. The sanitized value is the trimmed name.
func ValidateName(name string) Result {
	name = sanitizer.Trim(name)
	return check(name,
		localize(validator.RequiredString("", name), MsgNameRequired, KeyNameRequired),
		encodingRule(name),
		localize(validator.Matches("", name, nameRegex, "hangul"), MsgNameFormat, KeyNameFormat),
		localize(validator.LenBetween("", name, nameMinLen, nameMaxLen), MsgNameLength, KeyNameLength),
	)
}
