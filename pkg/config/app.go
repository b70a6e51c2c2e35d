package config

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/hangulform/pkg/httpserver"
	"github.com/dmitrymomot/hangulform/pkg/logger"
	"github.com/dmitrymomot/hangulform/pkg/validator"
)

// App is the configuration shared by the HTTP service and the CLI.
type App struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"hangulform"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTP httpserver.Config
	// TrustProxy reads client addresses from forwarding headers.
	TrustProxy bool `env:"HTTP_TRUST_PROXY" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	DefaultLanguage    string   `env:"I18N_DEFAULT_LANGUAGE" envDefault:"ko"`
	// I18NOverridesDir holds YAML or JSON catalogs merged over the built-in ones.
	I18NOverridesDir string `env:"I18N_OVERRIDES_DIR"`

	Form Form
}

// Form tunes the form engine.
type Form struct {
	TextLimit int  `env:"FORM_TEXT_LIMIT" envDefault:"1000"`
	NFC       bool `env:"FORM_NFC" envDefault:"false"`
}

// Validate reports every invalid setting at once. The error is a
// validator.ValidationErrors keyed by environment variable.
func (a *App) Validate() error {
	_, langErr := language.Parse(a.DefaultLanguage)
	var levelErr error
	if a.LogLevel != "" {
		_, levelErr = logger.ParseLevel(a.LogLevel)
	}

	return validator.Apply(
		validator.MinNum("FORM_TEXT_LIMIT", a.Form.TextLimit, 1),
		validator.MinNum("HTTP_MAX_BODY_BYTES", a.HTTP.MaxBodyBytes, 1),
		validator.NoError("I18N_DEFAULT_LANGUAGE", langErr),
		validator.NoError("LOG_LEVEL", levelErr),
	)
}
