package hangul

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

// Kind names the grammar a form field is dispatched to.
type Kind string

const (
	KindName     Kind = "name"
	KindPhone    Kind = "phone"
	KindAddress  Kind = "address"
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindSchool   Kind = "school_name"
	KindEncoding Kind = "encoding"
	KindCustom   Kind = "custom"
)

// DefaultLongTextMaxLen is the limit for long free-text fields such as
// educational goals or medical history.
const DefaultLongTextMaxLen = 1000

// DefaultFields maps the form field names the application uses to grammar
// kinds. Lookup is an exact, case-sensitive match; any other name is only
// checked for encoding.
var DefaultFields = map[string]Kind{
	"name":            KindName,
	"studentName":     KindName,
	"guardianName":    KindName,
	"phone":           KindPhone,
	"guardianPhone":   KindPhone,
	"emergencyPhone":  KindPhone,
	"email":           KindEmail,
	"guardianEmail":   KindEmail,
	"address":         KindAddress,
	"guardianAddress": KindAddress,
	"schoolName":      KindSchool,
	"educationGoals":  KindText,
	"medicalHistory":  KindText,
	"medications":     KindText,
}

// FieldInfo describes one entry of a form's dispatch table.
type FieldInfo struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

type field struct {
	kind    Kind
	grammar Grammar
}

// Form validates whole records by dispatching every field to its grammar.
// A Form is immutable after construction and safe for concurrent use.
type Form struct {
	fields    map[string]field
	textLimit int
	nfc       bool
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithField registers or replaces the grammar for a field name.
// Nil grammars are ignored.
func WithField(name string, g Grammar) FormOption {
	return func(f *Form) {
		if name == "" || g == nil {
			return
		}
		f.fields[name] = field{kind: KindCustom, grammar: g}
	}
}

// WithFieldKind maps a field name to one of the built-in grammars.
// Unknown kinds fall back to the encoding check.
func WithFieldKind(name string, kind Kind) FormOption {
	return func(f *Form) {
		if name == "" {
			return
		}
		f.fields[name] = f.builtin(kind)
	}
}

// WithTextLimit sets the character limit for long-text fields.
// Non-positive values are ignored.
func WithTextLimit(n int) FormOption {
	return func(f *Form) {
		if n > 0 {
			f.textLimit = n
		}
	}
}

// WithNFC composes decomposed Hangul jamo into syllables before validation.
func WithNFC() FormOption {
	return func(f *Form) {
		f.nfc = true
	}
}

// NewForm returns a Form using DefaultFields, adjusted by opts.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		fields:    make(map[string]field, len(DefaultFields)),
		textLimit: DefaultLongTextMaxLen,
	}
	for name, kind := range DefaultFields {
		f.fields[name] = f.builtin(kind)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// builtin resolves a built-in kind. Anything else, KindCustom included, is
// recorded as KindEncoding since that is the grammar it runs. The text
// grammar reads the limit at call time so option order does not matter.
func (f *Form) builtin(kind Kind) field {
	switch kind {
	case KindName:
		return field{kind: kind, grammar: ValidateName}
	case KindPhone:
		return field{kind: kind, grammar: ValidatePhone}
	case KindAddress:
		return field{kind: kind, grammar: ValidateAddress}
	case KindEmail:
		return field{kind: kind, grammar: ValidateEmail}
	case KindSchool:
		return field{kind: kind, grammar: ValidateSchoolName}
	case KindText:
		return field{kind: kind, grammar: func(s string) Result { return ValidateTextLimit(s, f.textLimit) }}
	default:
		return field{kind: KindEncoding, grammar: ValidateUTF8}
	}
}

// KindOf reports the grammar kind a field name dispatches to.
func (f *Form) KindOf(name string) Kind {
	if fl, ok := f.fields[name]; ok {
		return fl.kind
	}
	return KindEncoding
}

// Fields lists the dispatch table sorted by field name.
func (f *Form) Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(f.fields))
	for name, fl := range f.fields {
		out = append(out, FieldInfo{Name: name, Kind: fl.kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ValidateField validates a single value as if it were the named field of a
// record. Failures carry the field name.
func (f *Form) ValidateField(name string, value any) Result {
	s := ToString(value)
	if f.nfc {
		// Composition of invalid UTF-8 would hide the defect, leave it for the guard.
		if validator.RoundTripsUTF8(s) {
			s = sanitizer.ComposeHangul(s)
		}
	}

	g := Grammar(ValidateUTF8)
	if fl, ok := f.fields[name]; ok {
		g = fl.grammar
	}

	res := g(s)
	if res.Err != nil {
		err := res.Err.WithField(name)
		return Result{Err: &err}
	}
	return res
}

// Validate runs every field of record through its grammar. It never stops
// early: each key of record ends up in exactly one of Errors or Sanitized.
func (f *Form) Validate(record map[string]any) FormResult {
	out := FormResult{
		Errors:    make(map[string]string),
		Sanitized: make(map[string]string, len(record)),
		failures:  make(map[string]validator.ValidationError),
	}

	for name, value := range record {
		res := f.ValidateField(name, value)
		if res.Err != nil {
			out.Errors[name] = res.Err.Message
			out.failures[name] = *res.Err
			continue
		}
		out.Sanitized[name] = res.Sanitized
	}

	out.Valid = len(out.Errors) == 0
	return out
}

// FormResult is the outcome of validating a whole record.
type FormResult struct {
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors"`
	Sanitized map[string]string `json:"sanitized"`

	failures map[string]validator.ValidationError
}

// Failures returns the detailed errors sorted by field name.
func (r FormResult) Failures() validator.ValidationErrors {
	errs := make(validator.ValidationErrors, 0, len(r.failures))
	for _, err := range r.failures {
		errs = append(errs, err)
	}
	errs.Sort()
	return errs
}

// Err returns the failures as a validator.ValidationErrors error, or nil when
// the record is valid.
func (r FormResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Failures()
}

var defaultForm = NewForm()

// ValidateForm validates record with the default dispatch table.
func ValidateForm(record map[string]any) FormResult {
	return defaultForm.Validate(record)
}

// ValidateField validates a single named value with the default dispatch table.
func ValidateField(name string, value any) Result {
	return defaultForm.ValidateField(name, value)
}

// ToString coerces a raw form value to the string a grammar sees.
// nil becomes "", and values cast cannot convert are formatted with fmt.
func ToString(value any) string {
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}
