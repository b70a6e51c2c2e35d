package formcheck

import "errors"

var (
	// ErrInvalidRecords is returned when at least one record failed validation.
	// main maps it to exit status 1.
	ErrInvalidRecords = errors.New("one or more records are invalid")
	ErrInvalidField   = errors.New("value is invalid")

	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrReadInput         = errors.New("failed to read input")
	ErrDecodeInput       = errors.New("failed to decode input")
	ErrNotARecord        = errors.New("document must be a mapping or a list of mappings")
	ErrNestedValue       = errors.New("nested values are not supported")
)
