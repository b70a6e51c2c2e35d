package formapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hangulform/binder"
	"github.com/dmitrymomot/hangulform/handler"
	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/i18n"
	"github.com/dmitrymomot/hangulform/pkg/logger"
)

const fieldParam = "field"

// Service holds the HTTP handlers of the form API.
type Service struct {
	form *hangul.Form
	loc  *Localizer
	log  *slog.Logger
}

// NewService creates a Service. A nil form uses hangul.NewForm(); a nil
// logger discards.
func NewService(form *hangul.Form, tr *i18n.Translator, log *slog.Logger) *Service {
	if form == nil {
		form = hangul.NewForm()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		form: form,
		loc:  NewLocalizer(tr),
		log:  log.With(logger.Component("formapi")),
	}
}

// FormData is the data payload of /v1/forms/validate.
type FormData struct {
	Valid     bool              `json:"valid"`
	Sanitized map[string]string `json:"sanitized"`
}

// FieldData is the data payload of /v1/fields/{field}/validate.
type FieldData struct {
	Field     string      `json:"field"`
	Kind      hangul.Kind `json:"kind"`
	Valid     bool        `json:"valid"`
	Sanitized string      `json:"sanitized"`
}

// fieldRequest is the body of the single field endpoint.
type fieldRequest = binder.Record

func (s *Service) validationFailed(lang string, details map[string][]string, data any) handler.Response {
	return handler.JSONError(&handler.ErrorDetail{
		Code:    handler.ErrUnprocessableEntity.Key,
		Message: s.loc.Text(lang, keyValidationFailed, "입력값을 확인해주세요."),
		Details: details,
	}, handler.WithJSONStatus(http.StatusUnprocessableEntity), handler.WithJSONData(data))
}

// ValidateForm handles POST /v1/forms/validate.
func (s *Service) ValidateForm(ctx handler.Context, rec binder.Record) handler.Response {
	res := s.form.Validate(rec)
	lang := i18n.GetLocale(ctx)

	if res.Valid {
		s.log.DebugContext(ctx, "form valid", logger.FieldCount(len(rec)), logger.Lang(lang))
		return handler.JSON(FormData{Valid: true, Sanitized: res.Sanitized})
	}

	failures := res.Failures()
	s.log.InfoContext(ctx, "form rejected",
		logger.FieldCount(len(rec)),
		logger.InvalidFields(failures.Fields()),
		logger.Lang(lang),
	)
	return s.validationFailed(lang, s.loc.Details(lang, res), map[string]any{"sanitized": res.Sanitized})
}

// ValidateField handles POST /v1/fields/{field}/validate. A missing "value"
// validates as the empty string.
func (s *Service) ValidateField(ctx handler.Context, req fieldRequest) handler.Response {
	name := chi.URLParam(ctx.Request(), fieldParam)
	lang := i18n.GetLocale(ctx)
	kind := s.form.KindOf(name)

	res := s.form.ValidateField(name, req["value"])
	if res.Valid {
		return handler.JSON(FieldData{Field: name, Kind: kind, Valid: true, Sanitized: res.Sanitized})
	}

	s.log.DebugContext(ctx, "field rejected", logger.Field(name), logger.Lang(lang), logger.Error(res.Error()))
	details := map[string][]string{name: {s.loc.Message(lang, *res.Err)}}
	return s.validationFailed(lang, details, FieldData{Field: name, Kind: kind})
}

// ListFields handles GET /v1/fields.
func (s *Service) ListFields(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(s.form.Fields())
}

// Ready reports whether the service can answer requests in its default
// language.
func (s *Service) Ready(context.Context) error {
	return s.loc.Ready()
}
