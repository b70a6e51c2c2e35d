// Package binder decodes HTTP request bodies into flat form records.
//
// A record is a map of field name to value. JSON bodies must hold a single
// object; numbers are kept as json.Number so "01012345678" and 1012345678
// stay distinguishable. URL-encoded bodies yield the first value of each key.
//
//	r.Post("/v1/forms/validate", handler.Wrap(validateForm,
//		handler.WithBinders[handler.Context, binder.Record](binder.JSON(), binder.Form()),
//	))
//
// Binders return ErrBinderNotApplicable for requests whose content type they
// do not handle so several can be chained.
package binder
