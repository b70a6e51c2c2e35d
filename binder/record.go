package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Record is a flat field name to value map.
type Record map[string]any

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
)

// Bind is the signature shared by every binder.
type Bind = func(r *http.Request, v any) error

// mediaType returns the lower-cased media type without parameters.
func mediaType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", ErrMissingContentType
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return strings.ToLower(mt), nil
}

func target(v any) (*Record, error) {
	switch t := v.(type) {
	case *Record:
		return t, nil
	case *map[string]any:
		return (*Record)(t), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
}

// Supported reports whether the request carries a media type some binder in
// this package decodes. Missing content type is reported as unsupported.
func Supported(r *http.Request) error {
	mt, err := mediaType(r)
	if err != nil {
		return err
	}
	switch mt {
	case MIMEApplicationJSON, MIMEApplicationForm:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}
}

func bodyErr(kind, err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", kind, err)
}
