// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response:
//
//	func validateField(ctx handler.Context, req binder.Record) handler.Response {
//		res := hangul.ValidateField(chi.URLParam(ctx.Request(), "field"), req["value"])
//		return handler.JSON(res)
//	}
//
//	r.Post("/v1/fields/{field}/validate", handler.Wrap(validateField,
//		handler.WithBinders[handler.Context, binder.Record](binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, binder.Record](errHandler),
//	))
//
// Binding and rendering failures go to the ErrorHandler. NewErrorHandler
// renders them as the standard JSON error envelope.
package handler
