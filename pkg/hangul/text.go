package hangul

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

// DefaultTextMaxLen is the limit ValidateText applies.
const DefaultTextMaxLen = 500

// Hangul, Latin letters, digits, whitespace and . , ! ? ( ) [ ] { } ' " : -
var textRegex = regexp.MustCompile(`^[\x{AC00}-\x{D7A3}a-zA-Z0-9` + spaceClass + `.,!?()\[\]{}'":\-]+$`)

// ValidateText validates required free text of at most DefaultTextMaxLen characters.
func ValidateText(text string) Result {
	return ValidateTextLimit(text, DefaultTextMaxLen)
}

// ValidateTextLimit is ValidateText with a caller-chosen limit.
// A non-positive maxLength falls back to DefaultTextMaxLen.
func ValidateTextLimit(text string, maxLength int) Result {
	if maxLength <= 0 {
		maxLength = DefaultTextMaxLen
	}

	text = sanitizer.Trim(text)
	return check(text,
		localize(validator.RequiredString("", text), MsgTextRequired, KeyTextRequired),
		encodingRule(text),
		localize(validator.Matches("", text, textRegex, "text"), MsgTextFormat, KeyTextFormat),
		localize(validator.MaxLen("", text, maxLength), fmt.Sprintf(MsgTextLength, maxLength), KeyTextLength),
	)
}
