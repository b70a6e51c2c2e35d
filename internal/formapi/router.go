package formapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/dmitrymomot/hangulform/binder"
	"github.com/dmitrymomot/hangulform/handler"
	"github.com/dmitrymomot/hangulform/pkg/clientip"
	"github.com/dmitrymomot/hangulform/pkg/environment"
	"github.com/dmitrymomot/hangulform/pkg/httpserver"
	"github.com/dmitrymomot/hangulform/pkg/i18n"
	"github.com/dmitrymomot/hangulform/pkg/logger"
	"github.com/dmitrymomot/hangulform/pkg/requestid"
)

// DefaultMaxBodyBytes caps request bodies when RouterConfig leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Env            environment.Environment
	AllowedOrigins []string
	MaxBodyBytes   int64
	// TrustProxy lets client addresses come from forwarding headers.
	TrustProxy bool
	Translator     *i18n.Translator
	Logger         *slog.Logger
	// Probes are added to /health/ready next to the service's own check.
	Probes map[string]httpserver.Probe
}

// NewRouter mounts the API on a chi router.
func NewRouter(svc *Service, cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Env == "" {
		cfg.Env = environment.Development
	}

	var msg handler.MessageFunc
	defaultLang := i18n.DefaultLanguage
	var langs []string
	if cfg.Translator != nil {
		tr := cfg.Translator
		msg = func(ctx context.Context, key string) string { return tr.Tc(ctx, key) }
		defaultLang = cfg.Translator.DefaultLanguage()
		langs = cfg.Translator.SupportedLanguages()
	}
	errHandler := handler.NewErrorHandler(log, msg)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustProxy),
		environment.Middleware(cfg.Env),
		accessLog(log),
		middleware.Recoverer,
		corsHandler(cfg.AllowedOrigins).Handler,
		i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(langs...)), defaultLang),
	)

	probes := map[string]httpserver.Probe{"form": svc.Ready}
	for name, p := range cfg.Probes {
		probes[name] = p
	}
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, probes))

	r.Route("/v1", func(r chi.Router) {
		r.Use(limitBody(cfg.MaxBodyBytes))

		r.Post("/forms/validate", handler.Wrap(svc.ValidateForm,
			handler.WithBinders[handler.Context, binder.Record](binder.JSON(), binder.Form()),
			handler.WithErrorHandler[handler.Context, binder.Record](errHandler),
		))
		r.Post("/fields/{"+fieldParam+"}/validate", handler.Wrap(svc.ValidateField,
			handler.WithBinders[handler.Context, fieldRequest](binder.JSON(), binder.Form()),
			handler.WithErrorHandler[handler.Context, fieldRequest](errHandler),
		))
		r.Get("/fields", handler.Wrap(svc.ListFields,
			handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		))
	})

	notFound := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.JSONError(&handler.ErrorDetail{Code: handler.ErrNotFound.Key, Message: http.StatusText(http.StatusNotFound)})
	})
	r.NotFound(notFound)

	return r
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept-Language", requestid.Header},
		ExposedHeaders: []string{requestid.Header},
		MaxAge:         600,
	})
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one record per request once the response is done.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
