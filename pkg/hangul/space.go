package hangul

// spaceClass is the body of a regexp character class matching exactly the
// runes sanitizer.IsSpace accepts. RE2's \s alone is ASCII only.
const spaceClass = `\s\v\p{Z}\x{FEFF}`
