package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/requestid"
)

// Envelope is the body of every JSON reply.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON reply.
type JSONOption func(*jsonResponse)

// WithStatus overrides the status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithMeta attaches metadata next to the data.
func WithMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON replies 200 with v as data.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError replies with err mapped to a status and an error detail.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := errorDetail(err)
	r := &jsonResponse{status: status, body: Envelope{Error: detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorDetail(err error) (int, *ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		d := &ErrorDetail{Code: "validation_error", Message: verr.Error(), Details: make(map[string][]string, len(verr))}
		maps.Copy(d.Details, verr)
		return http.StatusUnprocessableEntity, d
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		d := &ErrorDetail{Code: herr.Key, Message: http.StatusText(herr.Code)}
		// Client errors explain themselves; server errors stay opaque.
		if herr.Code < http.StatusInternalServerError {
			if msg := strings.TrimLeft(strings.TrimPrefix(err.Error(), herr.Key), ": \n"); msg != "" {
				d.Message = msg
			}
		}
		return herr.Code, d
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// Selector is where a datastar client patches rendered verdicts.
const Selector = "#verdict"

type templResponse struct {
	component templ.Component
	opts      []datastar.PatchElementOption
}

// Templ renders c as HTML, or as a datastar element patch when the client
// asked for an event stream.
func Templ(c templ.Component, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: c, opts: opts}
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if t.component == nil {
		return ErrNilComponent
	}
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.opts...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// IsDataStar reports whether the request came from a datastar client.
func IsDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}

// NewErrorHandler logs the failure at a level matching its status and
// replies with the JSON error envelope.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		resp := JSONError(err).(*jsonResponse)

		level := slog.LevelWarn
		if resp.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", resp.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if rerr := resp.Render(w, r); rerr != nil {
			log.DebugContext(r.Context(), "error reply not written", logger.Error(rerr))
		}
	}
}
