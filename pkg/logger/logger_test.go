package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hangulform/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONWithExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "test")),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(ctxKey{}).(string); ok {
				return logger.RequestID(v), true
			}
			return slog.Attr{}, false
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "form validated",
		logger.FieldCount(3),
		logger.Valid(false),
		logger.InvalidFields([]string{"email"}),
	)

	rec := decode(t, &buf)
	assert.Equal(t, "form validated", rec["msg"])
	assert.Equal(t, "test", rec["service"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, float64(3), rec["field_count"])
	assert.Equal(t, false, rec["valid"])
	assert.Equal(t, []any{"email"}, rec["invalid_fields"])
}

func TestContextHandler_SkipsLoggedKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	extract := func(ctx context.Context) (slog.Attr, bool) {
		return logger.RequestID("from-ctx"), true
	}
	h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), extract, extract)
	log := slog.New(h)

	log.InfoContext(context.Background(), "explicit", logger.RequestID("explicit-id"))
	assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
	assert.Contains(t, buf.String(), `"request_id":"explicit-id"`)

	buf.Reset()
	log.With(logger.Component("http")).InfoContext(context.Background(), "extracted")
	assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
	assert.Contains(t, buf.String(), `"request_id":"from-ctx"`)
	assert.Contains(t, buf.String(), `"component":"http"`)
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Equal(t, "shown", decode(t, &buf)["msg"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      string
		wantEnv  string
		wantJSON bool
	}{
		{"production", "production", true},
		{"prod", "production", true},
		{"staging", "staging", true},
		{"development", "development", false},
		{"", "development", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logger.New(logger.WithEnvironment(tt.env, "svc"), logger.WithOutput(&buf))
			log.Info("hello")

			if tt.wantJSON {
				rec := decode(t, &buf)
				assert.Equal(t, tt.wantEnv, rec["env"])
				assert.Equal(t, "svc", rec["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			assert.Contains(t, buf.String(), "service=svc")
		})
	}
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	assert.NotPanics(t, func() { logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&bytes.Buffer{})) })
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)

	group := logger.Errors(err, nil, err)
	require.Equal(t, slog.KindGroup, group.Value.Kind())
	assert.Len(t, group.Value.Group(), 2)

	attr := logger.Group("form", logger.Field("email"), logger.Lang("ko"))
	require.Equal(t, "form", attr.Key)
	assert.Equal(t, "field", attr.Value.Group()[0].Key)
	assert.Equal(t, "lang", attr.Value.Group()[1].Key)
	assert.Equal(t, "stdin", logger.Source("stdin").Value.String())
	assert.Equal(t, "formapi", logger.Component("formapi").Value.String())
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.Equal(t, "client_ip", logger.ClientIP("10.0.0.1").Key)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("verbose")
	assert.Error(t, err)
}
