package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors". All-nil input yields an empty Attr.
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

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// PassID records the lie-detection pass identifier under "pass_id".
func PassID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("pass_id", id)
}

// Family records a platform family under "family". Empty input yields an empty Attr.
func Family(family string) slog.Attr {
	if family == "" {
		return slog.Attr{}
	}
	return slog.String("family", family)
}

// ContextType records a worker execution context type under "context_type".
func ContextType(kind string) slog.Attr {
	return slog.String("context_type", kind)
}

// Hash records a content hash under "hash".
func Hash(hash string) slog.Attr {
	if hash == "" {
		return slog.Attr{}
	}
	return slog.String("hash", hash)
}

// Passed records a verdict outcome under "passed".
func Passed(ok bool) slog.Attr {
	return slog.Bool("passed", ok)
}

// Duration records a duration under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler records the handler name under "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
