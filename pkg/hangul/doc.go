// Package hangul validates and sanitizes the text fields of Korean
// administrative forms: personal names, mobile phone numbers, addresses,
// free-text notes, e-mail addresses and school names.
//
// Every grammar is a pure function from the raw string to a Result holding a
// validity flag, an optional error and the sanitized value to persist. All of
// them run the UTF-8 round-trip guard (ValidateUTF8) before any field-specific
// rule, so malformed byte sequences never reach the character-class checks.
//
// # Usage
//
//	res := hangul.ValidatePhone("010 1234 5678")
//	// res.Valid == true, res.Sanitized == "010-1234-5678"
//
//	out := hangul.ValidateForm(map[string]any{
//	    "name":  "김민수",
//	    "phone": "01012345678",
//	    "email": "BAD",
//	})
//	// out.Valid == false, out.Errors["email"] is set,
//	// out.Sanitized["phone"] == "010-1234-5678"
//
// # Field dispatch
//
// ValidateForm picks a grammar by exact field name (see DefaultFields). Names
// missing from the table only get the encoding check, so a new form field
// must be added to the table, or registered with WithField on a custom Form,
// to receive its semantic rules.
//
// # Errors
//
// Failures are reported as *validator.ValidationError values whose Kind is
// one of validator.ErrFieldRequired, ErrInvalidEncoding, ErrInvalidFormat or
// ErrInvalidLength. Messages default to Korean; TranslationKey carries the
// i18n key for other languages. Nothing in this package panics or logs.
package hangul
