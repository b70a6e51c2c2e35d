package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/hangulform/internal/formapi"
	"github.com/dmitrymomot/hangulform/pkg/clientip"
	"github.com/dmitrymomot/hangulform/pkg/config"
	"github.com/dmitrymomot/hangulform/pkg/environment"
	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/httpserver"
	"github.com/dmitrymomot/hangulform/pkg/i18n"
	"github.com/dmitrymomot/hangulform/pkg/logger"
	"github.com/dmitrymomot/hangulform/pkg/requestid"
	"github.com/dmitrymomot/hangulform/pkg/validator"
	"github.com/dmitrymomot/hangulform/translations"
)

func main() {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		logger.New().Error("failed to load configuration",
			logger.InvalidFields(validator.ExtractValidationErrors(err).Fields()),
			logger.Error(err),
		)
		os.Exit(1)
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, _ := logger.ParseLevel(cfg.LogLevel) // checked by config validation
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := translations.Load(ctx, cfg.I18NOverridesDir,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		log.Error("failed to load translations", logger.Error(err))
		os.Exit(1)
	}

	formOpts := []hangul.FormOption{hangul.WithTextLimit(cfg.Form.TextLimit)}
	if cfg.Form.NFC {
		formOpts = append(formOpts, hangul.WithNFC())
	}

	svc := formapi.NewService(hangul.NewForm(formOpts...), tr, log)
	router := formapi.NewRouter(svc, formapi.RouterConfig{
		Env:            environment.Parse(cfg.Env),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		TrustProxy:     cfg.TrustProxy,
		Translator:     tr,
		Logger:         log,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
