package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/hangulform/pkg/logger"
)

// MessageFunc turns an error key into a user facing message for the request.
type MessageFunc func(ctx context.Context, key string) string

// NewErrorHandler renders binding and rendering failures as JSON error
// envelopes. Client errors are logged at warn, server errors at error.
// A nil message func falls back to the HTTP status text.
func NewErrorHandler(log *slog.Logger, message MessageFunc) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		level := slog.LevelError
		if info.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("handler"),
			logger.Error(err),
			slog.Int("status", info.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		msg := http.StatusText(info.Code)
		if message != nil {
			if m := message(r.Context(), "api."+info.Key); m != "" && m != "api."+info.Key {
				msg = m
			}
		}

		resp := JSONError(&ErrorDetail{Code: info.Key, Message: msg}, WithJSONStatus(info.Code))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
