package hangul_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

// encoded UTF-16 high surrogate: what an unpaired surrogate becomes in a Go string
const loneSurrogate = "\xed\xa0\x80"

// "김" as conjoining jamo (NFD)
const decomposedKim = "\u1100\u1175\u11b7"

func requireInvalid(t *testing.T, res hangul.Result, kind error, message string) {
	t.Helper()
	require.False(t, res.Valid)
	require.NotNil(t, res.Err)
	assert.Empty(t, res.Sanitized)
	assert.True(t, errors.Is(res.Error(), kind), "expected %v, got %v", kind, res.Err.Kind)
	if message != "" {
		assert.Equal(t, message, res.Message())
	}
}

func requireValid(t *testing.T, res hangul.Result, sanitized string) {
	t.Helper()
	require.True(t, res.Valid, "unexpected error: %s", res.Message())
	assert.Nil(t, res.Err)
	assert.Empty(t, res.Message())
	assert.NoError(t, res.Error())
	assert.Equal(t, sanitized, res.Sanitized)
}

func TestValidateUTF8(t *testing.T) {
	t.Parallel()

	t.Run("valid text is returned unchanged", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "  한글 text 123 ", "�", "emoji 😀"} {
			requireValid(t, hangul.ValidateUTF8(s), s)
		}
	})

	t.Run("malformed sequences are rejected", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{loneSurrogate, "abc\xff", "\xe1\x84", "김" + loneSurrogate + "수"} {
			res := hangul.ValidateUTF8(s)
			requireInvalid(t, res, validator.ErrInvalidEncoding, hangul.MsgEncoding)
			assert.Equal(t, hangul.KeyEncoding, res.Err.TranslationKey)
		}
	})
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"김민수":        "김민수",
			"  이서연  ":    "이서연",
			"김이":         "김이",
			"가나다라마바사아자차": "가나다라마바사아자차",
			"남궁 민수":      "남궁 민수",
		}
		for in, want := range tests {
			requireValid(t, hangul.ValidateName(in), want)
		}
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "   ", "\t\n"} {
			res := hangul.ValidateName(s)
			requireInvalid(t, res, validator.ErrFieldRequired, hangul.MsgNameRequired)
			assert.Equal(t, hangul.KeyNameRequired, res.Err.TranslationKey)
		}
	})

	t.Run("length bounds", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateName("김"), validator.ErrInvalidLength, hangul.MsgNameLength)
		requireInvalid(t, hangul.ValidateName("가나다라마바사아자차카"), validator.ErrInvalidLength, hangul.MsgNameLength)
	})

	t.Run("non-hangul characters", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"김Min", "Kim", "김민수1", "김-민수", "ㄱㄴ", "金民秀"} {
			requireInvalid(t, hangul.ValidateName(s), validator.ErrInvalidFormat, hangul.MsgNameFormat)
		}
	})

	t.Run("format is reported before length", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateName("A"), validator.ErrInvalidFormat, hangul.MsgNameFormat)
	})

	t.Run("decomposed jamo are not syllables", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateName(decomposedKim+"민수"), validator.ErrInvalidFormat, "")
	})

	t.Run("encoding", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateName("김"+loneSurrogate), validator.ErrInvalidEncoding, hangul.MsgEncoding)
	})
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	t.Run("normalizes any punctuation", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{
			"010 1234 5678",
			"01012345678",
			"010-1234-5678",
			"(010) 1234-5678",
			" 010.1234.5678 ",
			"０１０-１２３４-５６７８",
		} {
			requireValid(t, hangul.ValidatePhone(s), "010-1234-5678")
		}
	})

	t.Run("empty is not provided", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidatePhone(""), "")
		requireValid(t, hangul.ValidatePhone("   "), "")
		requireValid(t, hangul.ValidatePhone("--"), "")
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"0101234567", "010123456789", "010"} {
			res := hangul.ValidatePhone(s)
			requireInvalid(t, res, validator.ErrInvalidLength, hangul.MsgPhoneLength)
			assert.Equal(t, hangul.KeyPhoneLength, res.Err.TranslationKey)
		}
	})

	t.Run("non-mobile prefix", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"01112345678", "02-1234-56789", "016-123-45678"} {
			res := hangul.ValidatePhone(s)
			requireInvalid(t, res, validator.ErrInvalidFormat, hangul.MsgPhonePrefix)
			assert.Equal(t, hangul.KeyPhonePrefix, res.Err.TranslationKey)
		}
	})

	t.Run("encoding", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidatePhone("010"+loneSurrogate+"12345678"), validator.ErrInvalidEncoding, hangul.MsgEncoding)
	})
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateAddress(""), "")
		requireValid(t, hangul.ValidateAddress("   "), "")
		requireValid(t, hangul.ValidateAddress(" 서울특별시 강남구 테헤란로 123 "), "서울특별시 강남구 테헤란로 123")
		requireValid(t, hangul.ValidateAddress("부산광역시 해운대구 우동 1408-5, 101동 (센텀)"), "부산광역시 해운대구 우동 1408-5, 101동 (센텀)")
		requireValid(t, hangul.ValidateAddress(strings.Repeat("가", 200)), strings.Repeat("가", 200))
	})

	t.Run("disallowed characters", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"Seoul", "서울시 #101", "서울/강남"} {
			requireInvalid(t, hangul.ValidateAddress(s), validator.ErrInvalidFormat, hangul.MsgAddressFormat)
		}
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateAddress(strings.Repeat("가", 201)), validator.ErrInvalidLength, hangul.MsgAddressLength)
	})

	t.Run("encoding", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateAddress("서울"+loneSurrogate), validator.ErrInvalidEncoding, hangul.MsgEncoding)
	})
}

func TestValidateText(t *testing.T) {
	t.Parallel()

	t.Run("valid text", func(t *testing.T) {
		t.Parallel()
		in := ` 목표: 읽기 능력 향상 (Reading level 2), "매일" 10분! [주 5회] {선택} 'ok'? - 끝. `
		requireValid(t, hangul.ValidateText(in), strings.TrimSpace(in))
		requireValid(t, hangul.ValidateText("첫 줄\n둘째 줄"), "첫 줄\n둘째 줄")
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		res := hangul.ValidateText("  ")
		requireInvalid(t, res, validator.ErrFieldRequired, hangul.MsgTextRequired)
		assert.Equal(t, hangul.KeyTextRequired, res.Err.TranslationKey)
	})

	t.Run("disallowed characters", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"<script>", "50%", "a@b", "메모 #1", "a/b"} {
			requireInvalid(t, hangul.ValidateText(s), validator.ErrInvalidFormat, hangul.MsgTextFormat)
		}
	})

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateText(strings.Repeat("a", 500)), strings.Repeat("a", 500))
		requireInvalid(t, hangul.ValidateText(strings.Repeat("a", 501)), validator.ErrInvalidLength, "500자 이하로 입력해주세요.")
	})

	t.Run("custom limit", func(t *testing.T) {
		t.Parallel()
		res := hangul.ValidateTextLimit(strings.Repeat("가", 11), 10)
		requireInvalid(t, res, validator.ErrInvalidLength, "10자 이하로 입력해주세요.")
		assert.Equal(t, 10, res.Err.TranslationValues["max"])

		requireValid(t, hangul.ValidateTextLimit(strings.Repeat("가", 10), 10), strings.Repeat("가", 10))
		requireValid(t, hangul.ValidateTextLimit(strings.Repeat("가", 500), 0), strings.Repeat("가", 500))
	})
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid emails are lower-cased", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateEmail(""), "")
		requireValid(t, hangul.ValidateEmail("  User.Name@Example.COM "), "user.name@example.com")
		requireValid(t, hangul.ValidateEmail("teacher+iep@school.go.kr"), "teacher+iep@school.go.kr")
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"BAD", "a@b", "a@@b.com", "a b@c.com", "@example.com", "user@.", "a@b.c@d.com"} {
			res := hangul.ValidateEmail(s)
			requireInvalid(t, res, validator.ErrInvalidFormat, hangul.MsgEmailFormat)
			assert.Equal(t, hangul.KeyEmailFormat, res.Err.TranslationKey)
		}
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateEmail(strings.Repeat("a", 94)+"@b.com"), strings.Repeat("a", 94)+"@b.com")
		requireInvalid(t, hangul.ValidateEmail(strings.Repeat("a", 95)+"@b.com"), validator.ErrInvalidLength, hangul.MsgEmailLength)
	})

	t.Run("encoding is checked before lower-casing", func(t *testing.T) {
		t.Parallel()
		requireInvalid(t, hangul.ValidateEmail("USER\xff@example.com"), validator.ErrInvalidEncoding, hangul.MsgEncoding)
	})
}

func TestValidateSchoolName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateSchoolName(""), "")
		requireValid(t, hangul.ValidateSchoolName(" 서울초등학교 "), "서울초등학교")
		requireValid(t, hangul.ValidateSchoolName("Seoul Global School 2"), "Seoul Global School 2")
	})

	t.Run("disallowed characters", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"서울-초등학교", "학교(분교)", "St. Mary's"} {
			requireInvalid(t, hangul.ValidateSchoolName(s), validator.ErrInvalidFormat, hangul.MsgSchoolFormat)
		}
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateSchoolName(strings.Repeat("가", 50)), strings.Repeat("가", 50))
		requireInvalid(t, hangul.ValidateSchoolName(strings.Repeat("가", 51)), validator.ErrInvalidLength, hangul.MsgSchoolLength)
	})
}

func TestGrammars_SurrogateAlwaysFails(t *testing.T) {
	t.Parallel()

	grammars := map[string]hangul.Grammar{
		"utf8":    hangul.ValidateUTF8,
		"name":    hangul.ValidateName,
		"phone":   hangul.ValidatePhone,
		"address": hangul.ValidateAddress,
		"text":    hangul.ValidateText,
		"email":   hangul.ValidateEmail,
		"school":  hangul.ValidateSchoolName,
	}

	for name, g := range grammars {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireInvalid(t, g("김민수"+loneSurrogate), validator.ErrInvalidEncoding, hangul.MsgEncoding)
		})
	}
}

func TestGrammars_SanitizedIsIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		grammar hangul.Grammar
		input   string
	}{
		{"name", hangul.ValidateName, "  김민수 "},
		{"phone", hangul.ValidatePhone, "(010) 9876 5432"},
		{"phone empty", hangul.ValidatePhone, ""},
		{"address", hangul.ValidateAddress, " 서울시 중구 세종대로 110 "},
		{"text", hangul.ValidateText, " 주 3회 언어치료 (30분). "},
		{"email", hangul.ValidateEmail, " Parent@Mail.NET "},
		{"school", hangul.ValidateSchoolName, " 한빛중학교 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first := tt.grammar(tt.input)
			require.True(t, first.Valid, first.Message())

			second := tt.grammar(first.Sanitized)
			require.True(t, second.Valid, second.Message())
			assert.Equal(t, first.Sanitized, second.Sanitized)
		})
	}
}

func BenchmarkValidateName(b *testing.B) {
	for b.Loop() {
		hangul.ValidateName("김민수")
	}
}

func BenchmarkValidatePhone(b *testing.B) {
	for b.Loop() {
		hangul.ValidatePhone("010 1234 5678")
	}
}

func TestGrammars_UnicodeWhitespace(t *testing.T) {
	t.Parallel()

	t.Run("ideographic and no-break spaces are spaces", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateName("\uAE40\u3000\uBBFC\uC218"), "\uAE40\u3000\uBBFC\uC218")
		requireValid(t, hangul.ValidateName("\uAE40\u00a0\uBBFC\uC218"), "\uAE40\u00a0\uBBFC\uC218")
		requireValid(t, hangul.ValidateAddress("\uC11C\uC6B8\u3000101"), "\uC11C\uC6B8\u3000101")
		requireValid(t, hangul.ValidateText("goal\u3000\uC77D\uAE30\u00a0up"), "goal\u3000\uC77D\uAE30\u00a0up")
		requireValid(t, hangul.ValidateSchoolName("Seoul\u00a0School"), "Seoul\u00a0School")
	})

	t.Run("byte order mark and unicode spaces are trimmed", func(t *testing.T) {
		t.Parallel()
		requireValid(t, hangul.ValidateName("\ufeff\uAE40\uBBFC\uC218\u3000"), "\uAE40\uBBFC\uC218")
		requireValid(t, hangul.ValidateSchoolName("\u00a0Seoul School\ufeff"), "Seoul School")
		requireValid(t, hangul.ValidateEmail("\ufeffUser@Example.com\u3000"), "user@example.com")
		requireValid(t, hangul.ValidateAddress("\u3000\u00a0"), "")
	})

	t.Run("unicode spaces inside an email are rejected", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"a\u00a0b@c.com", "a@c\u3000d.com", "a@c.co\ufeffm"} {
			res := hangul.ValidateEmail(s)
			requireInvalid(t, res, validator.ErrInvalidFormat, hangul.MsgEmailFormat)
		}
	})
}
