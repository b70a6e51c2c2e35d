package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// FieldCount records how many fields a record had.
func FieldCount(n int) slog.Attr {
	return slog.Int("field_count", n)
}

// InvalidFields records the names of the fields that failed validation.
func InvalidFields(names []string) slog.Attr {
	return slog.Any("invalid_fields", names)
}

// Valid records the overall validation outcome.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Lang records the language used for messages.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Source records where a record came from (file name, "stdin", "http").
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// ClientIP records the resolved client address.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}
