package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON binds an application/json body holding one object. Numbers stay
// json.Number; unpaired surrogate escapes survive as invalid UTF-8.
func JSON() Bind {
	return func(r *http.Request, v any) error {
		if mt, err := mediaType(r); err != nil || mt != MIMEApplicationJSON {
			return ErrBinderNotApplicable
		}
		dst, err := target(v)
		if err != nil {
			return err
		}

		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		var fields map[string]json.RawMessage
		if err := dec.Decode(&fields); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Join(ErrInvalidJSON, errors.New("empty body"))
			}
			return bodyErr(ErrInvalidJSON, err)
		}
		if fields == nil {
			return errors.Join(ErrInvalidJSON, errors.New("body must be a JSON object"))
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errors.Join(ErrInvalidJSON, errors.New("unexpected data after JSON object"))
		}

		rec := make(Record, len(fields))
		for name, raw := range fields {
			v, err := decodeValue(raw)
			if err != nil {
				return fmt.Errorf("%w: field %q: %v", ErrInvalidJSON, name, err)
			}
			rec[name] = v
		}

		*dst = rec
		return nil
	}
}
