package hangul

import "github.com/dmitrymomot/hangulform/pkg/validator"

// ValidateUTF8 checks that text survives a strict UTF-8 decode unchanged and
// returns it as is. Invalid byte sequences and encoded surrogate halves fail.
func ValidateUTF8(text string) Result {
	return check(text, encodingRule(text))
}

func encodingRule(text string) validator.Rule {
	return localize(validator.ValidUTF8("", text), MsgEncoding, KeyEncoding)
}
