package sanitizer

import "regexp"

// \D is ASCII-only in RE2, so non-ASCII digits are stripped too.
var nonDigitRegex = regexp.MustCompile(`\D`)
