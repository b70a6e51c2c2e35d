package binder

import (
	"net/http"
)

// Form binds an application/x-www-form-urlencoded body. Only the first value
// of repeated keys is kept.
func Form() Bind {
	return func(r *http.Request, v any) error {
		if mt, err := mediaType(r); err != nil || mt != MIMEApplicationForm {
			return ErrBinderNotApplicable
		}
		dst, err := target(v)
		if err != nil {
			return err
		}
		if err := r.ParseForm(); err != nil {
			return bodyErr(ErrInvalidForm, err)
		}

		rec := make(Record, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				rec[key] = values[0]
			}
		}
		*dst = rec
		return nil
	}
}
