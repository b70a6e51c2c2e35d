package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// WithJSONData attaches data to an error response.
func WithJSONData(data any) JSONOption {
	return func(r *jsonResponse) { r.body.Data = data }
}

// JSON renders v as {"data": v} with status 200. A JSONResponse value is
// rendered as is.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}
	if body, ok := v.(JSONResponse); ok {
		r.body = body
	} else {
		r.body.Data = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders detail under "error". The status defaults to the one
// matching detail.Code when it names a known HTTPError, else 500.
func JSONError(detail *ErrorDetail, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError, body: JSONResponse{Error: detail}}
	if detail != nil {
		for _, known := range []HTTPError{
			ErrBadRequest, ErrNotFound, ErrRequestEntityTooLarge,
			ErrUnsupportedMediaType, ErrUnprocessableEntity,
		} {
			if known.Key == detail.Code {
				r.status = known.Code
				break
			}
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
