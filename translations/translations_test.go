package translations_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/translations"
)

func TestCatalogsCoverEveryKey(t *testing.T) {
	t.Parallel()

	tr, err := translations.NewTranslator(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "ko"}, tr.SupportedLanguages())

	keys := []string{
		hangul.KeyEncoding,
		hangul.KeyNameRequired, hangul.KeyNameFormat, hangul.KeyNameLength,
		hangul.KeyPhoneLength, hangul.KeyPhonePrefix,
		hangul.KeyAddressFormat, hangul.KeyAddressLength,
		hangul.KeyTextRequired, hangul.KeyTextFormat, hangul.KeyTextLength,
		hangul.KeyEmailFormat, hangul.KeyEmailLength,
		hangul.KeySchoolFormat, hangul.KeySchoolLength,
		"api.validation_failed", "api.bad_request", "api.unsupported_media_type",
		"api.request_entity_too_large", "api.not_found", "api.internal_error",
	}
	for _, lang := range []string{"ko", "en"} {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
		}
	}
}

func TestCatalogPlaceholders(t *testing.T) {
	t.Parallel()

	tr, err := translations.NewTranslator(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "이름은 2자 이상 10자 이하로 입력해주세요.", tr.T("ko", hangul.KeyNameLength, "min", "2", "max", "10"))
	assert.Equal(t, "Mobile numbers must start with 010.", tr.T("en", hangul.KeyPhonePrefix, "prefix", "010"))
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"en":{"hangul":{"phone":{"prefix":"Use a %{prefix} number."}}}}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ko.yml"),
		[]byte("ko:\n  api:\n    validation_failed: 다시 확인해주세요.\n"), 0o600))

	tr, err := translations.Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "Use a 010 number.", tr.T("en", hangul.KeyPhonePrefix, "prefix", "010"))
	assert.Equal(t, "Phone numbers must have exactly 11 digits.", tr.T("en", hangul.KeyPhoneLength, "length", "11"))
	assert.Equal(t, "다시 확인해주세요.", tr.T("ko", "api.validation_failed"))
	assert.True(t, tr.HasTranslation("ko", "api.bad_request"))
}

func TestLoad_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	tr, err := translations.Load(context.Background(), "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "ko"}, tr.SupportedLanguages())

	_, err = translations.Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
