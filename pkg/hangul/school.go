package hangul

import (
	"regexp"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

const schoolMaxLen = 50

var schoolRegex = regexp.MustCompile(`^[\x{AC00}-\x{D7A3}a-zA-Z0-9` + spaceClass + `]+$`)

// ValidateSchoolName validates an optional school name made of Hangul, Latin
// letters, digits and spaces, at most 50 characters.
func ValidateSchoolName(name string) Result {
	name = sanitizer.Trim(name)
	if name == "" {
		return valid("")
	}

	return check(name,
		encodingRule(name),
		localize(validator.Matches("", name, schoolRegex, "school name"), MsgSchoolFormat, KeySchoolFormat),
		localize(validator.MaxLen("", name, schoolMaxLen), MsgSchoolLength, KeySchoolLength),
	)
}
