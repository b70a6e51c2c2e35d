// Package validator builds field validation out of small Rule values.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Every error carries a Kind sentinel (ErrFieldRequired,
// ErrInvalidEncoding, ErrInvalidFormat, ErrInvalidLength) that errors.Is
// matches, plus a translation key and values for i18n.
//
//	err := validator.ApplyFirst(
//		validator.RequiredString("name", name),
//		validator.ValidUTF8("name", name),
//		validator.LenBetween("name", name, 2, 10),
//	)
//	if err != nil && errors.Is(*err, validator.ErrInvalidLength) {
//		// ...
//	}
//
// Apply collects every failure into ValidationErrors; ApplyFirst stops at the
// first one, for rule lists where later checks assume earlier ones passed.
// Lengths are counted in runes.
package validator
