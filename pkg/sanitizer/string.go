package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// IsSpace reports whether r is whitespace: \t \n \v \f \r, any Unicode
// separator (Z, which includes U+00A0 and the ideographic space U+3000) and
// the byte order mark U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// Trim removes leading and trailing whitespace as defined by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return trimToLower(s)
}

var trimToLower = Compose(Trim, ToLower)

// ComposeHangul applies canonical composition (NFC). Decomposed jamo sequences,
// as produced by some input methods and file systems, become precomposed
// syllables in the U+AC00..U+D7A3 block; already composed text is unchanged.
func ComposeHangul(s string) string {
	return norm.NFC.String(s)
}

// FoldWidth converts full-width forms (e.g. "０１０") to their narrow ASCII
// counterparts. Characters without a narrow form are left as is.
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
