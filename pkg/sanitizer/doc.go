// Package sanitizer canonicalises user input before it is validated or stored.
//
// String helpers trim, lower-case, compose decomposed Hangul (NFC), fold
// full-width forms and strip control characters. Format helpers normalise
// and group Korean mobile numbers and mask names, phone numbers and e-mail
// addresses for display. Apply and Compose chain any func(T) T into a
// pipeline:
//
//	clean := sanitizer.Compose(sanitizer.FoldWidth, sanitizer.KeepDigits)
//	clean("０１０-１２３４-５６７８") // "01012345678"
//
// Helpers never fail; they return the best cleaned form of their input and
// are safe for concurrent use.
package sanitizer
