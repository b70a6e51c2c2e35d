package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "김민수", sanitizer.Trim("  김민수\t\n"))
	assert.Equal(t, "user@example.com", sanitizer.TrimToLower("  User@Example.COM "))
	assert.Equal(t, "ab\ncd", sanitizer.RemoveControlChars("a\x00b\ncd\x07"))
	assert.Equal(t, "01012345678", sanitizer.KeepDigits("010-1234-5678"))
	assert.Equal(t, "", sanitizer.KeepDigits("phone"))
	assert.Equal(t, "12", sanitizer.KeepDigits("1\u06632"), "non-ASCII digits are dropped")
}

func TestUnicodeWhitespace(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u1680', '\u2003', '\u2028', '\u2029', '\u202f', '\u3000', '\ufeff'} {
		assert.True(t, sanitizer.IsSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '0', '-', '\u200b', '\u0085', '\uac00'} {
		assert.False(t, sanitizer.IsSpace(r), "%U", r)
	}

	assert.Equal(t, "김\u3000민수", sanitizer.Trim("\ufeff\u3000김\u3000민수\u00a0\u2028"))
	assert.Equal(t, "", sanitizer.Trim("\ufeff\u3000 "))
	assert.Equal(t, "user@example.com", sanitizer.TrimToLower("\ufeffUser@Example.com\u3000"))
}

func TestComposeHangul(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "김", sanitizer.ComposeHangul("\u1100\u1175\u11b7"))
	assert.Equal(t, "김민수", sanitizer.ComposeHangul("김민수"))
	assert.Equal(t, "abc", sanitizer.ComposeHangul("abc"))
}

func TestFoldWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "010-1234", sanitizer.FoldWidth("０１０－１２３４"))
	assert.Equal(t, "김민수", sanitizer.FoldWidth("김민수"))
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		normalized string
		formatted  string
		masked     string
	}{
		{"010-1234-5678", "01012345678", "010-1234-5678", "*******5678"},
		{"(010) 1234 5678", "01012345678", "010-1234-5678", "*******5678"},
		{"０１０ １２３４ ５６７８", "01012345678", "010-1234-5678", "*******5678"},
		{"02-123-4567", "021234567", "02-123-4567", "*****4567"},
		{"12", "12", "12", "**"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.normalized, sanitizer.NormalizePhone(tt.in))
			assert.Equal(t, tt.formatted, sanitizer.FormatPhoneKR(tt.in))
			assert.Equal(t, tt.masked, sanitizer.MaskPhone(tt.in))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u***@example.com", sanitizer.MaskEmail("user@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("a@example.com"))
	assert.Equal(t, "민**@example.com", sanitizer.MaskEmail("민수희@example.com"))
	assert.Equal(t, "not-an-email", sanitizer.MaskEmail("not-an-email"))
	assert.Equal(t, "a@b@c", sanitizer.MaskEmail("a@b@c"))
}

func TestMaskName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "김**", sanitizer.MaskName("김민수"))
	assert.Equal(t, "남***", sanitizer.MaskName(" 남궁민수 "))
	assert.Equal(t, "*", sanitizer.MaskName("김"))
	assert.Equal(t, "", sanitizer.MaskName("  "))
}

func TestApplyCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sanitizer.Apply("  ABC ", sanitizer.Trim, sanitizer.ToLower))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	digits := sanitizer.Compose(sanitizer.FoldWidth, sanitizer.KeepDigits)
	assert.Equal(t, "010", digits("０１０-"))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}

func BenchmarkNormalizePhone(b *testing.B) {
	for b.Loop() {
		sanitizer.NormalizePhone("０１０-１２３４-５６７８")
	}
}
