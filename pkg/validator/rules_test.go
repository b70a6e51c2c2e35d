package validator_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hangulform/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		ok   bool
		kind error
		key  string
	}{
		{"required ok", validator.RequiredString("f", "가"), true, validator.ErrFieldRequired, "validation.required"},
		{"required blank", validator.RequiredString("f", " \t"), false, validator.ErrFieldRequired, "validation.required"},
		{"max runes", validator.MaxLen("f", strings.Repeat("가", 10), 10), true, validator.ErrInvalidLength, "validation.max_length"},
		{"max exceeded", validator.MaxLen("f", strings.Repeat("가", 11), 10), false, validator.ErrInvalidLength, "validation.max_length"},
		{"between low", validator.LenBetween("f", "가", 2, 10), false, validator.ErrInvalidLength, "validation.length_between"},
		{"between ok", validator.LenBetween("f", "가나", 2, 10), true, validator.ErrInvalidLength, "validation.length_between"},
		{"exact ok", validator.Len("f", "01012345678", 11), true, validator.ErrInvalidLength, "validation.exact_length"},
		{"exact short", validator.Len("f", "0101234567", 11), false, validator.ErrInvalidLength, "validation.exact_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ok, tt.rule.Check())
			assert.ErrorIs(t, tt.rule.Error, tt.kind)
			assert.Equal(t, tt.key, tt.rule.Error.TranslationKey)
			assert.Equal(t, "f", tt.rule.Error.Field)
		})
	}
}

func TestLengthTranslationValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, validator.MaxLen("f", "", 10).Error.TranslationValues["max"])
	between := validator.LenBetween("f", "", 2, 10).Error.TranslationValues
	assert.Equal(t, 2, between["min"])
	assert.Equal(t, 10, between["max"])
	assert.Equal(t, 11, validator.Len("f", "", 11).Error.TranslationValues["length"])
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	hangul := regexp.MustCompile(`^[\x{AC00}-\x{D7A3}]+$`)
	assert.True(t, validator.Matches("f", "김민수", hangul, "hangul").Check())
	assert.False(t, validator.Matches("f", "Kim", hangul, "hangul").Check())
	assert.False(t, validator.Matches("f", "  ", regexp.MustCompile(`.*`), "any").Check(), "blank never matches")
	assert.ErrorIs(t, validator.Matches("f", "", hangul, "hangul").Error, validator.ErrInvalidFormat)

	prefix := validator.StartsWith("f", "01112345678", "010")
	assert.False(t, prefix.Check())
	assert.Equal(t, "010", prefix.Error.TranslationValues["prefix"])
	assert.True(t, validator.StartsWith("f", "01012345678", "010").Check())
}

func TestEncodingRules(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                 true,
		"김민수":              true,
		"emoji 😀":          true,
		"\xed\xa0\x80":     false, // encoded high surrogate
		"\xed\xbf\xbf":     false, // encoded low surrogate
		"abc\xff":          false,
		"\xc0\xaf":         false, // overlong
		"\xf0\x9f\x98\x80": true,
	}
	for in, want := range tests {
		assert.Equal(t, want, validator.RoundTripsUTF8(in), "%q", in)
		rule := validator.ValidUTF8("f", in)
		assert.Equal(t, want, rule.Check(), "%q", in)
		assert.ErrorIs(t, rule.Error, validator.ErrInvalidEncoding)
	}
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinNum("limit", 1, 1).Check())
	assert.True(t, validator.MinNum("bytes", int64(1<<20), 1).Check())

	rule := validator.MinNum("limit", 0, 1)
	assert.False(t, rule.Check())
	assert.ErrorIs(t, rule.Error, validator.ErrOutOfRange)
	assert.Equal(t, "limit: must be at least 1", rule.Error.Error())
	assert.Equal(t, 1, rule.Error.TranslationValues["min"])
}

func TestNoError(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NoError("level", nil).Check())

	rule := validator.NoError("level", errors.New(`unknown level "loud"`))
	assert.False(t, rule.Check())
	assert.ErrorIs(t, rule.Error, validator.ErrInvalidFormat)
	assert.Equal(t, `level: unknown level "loud"`, rule.Error.Error())
}
