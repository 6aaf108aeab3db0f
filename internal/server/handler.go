package server

import (
	"context"
	"net/http"
)

// HandlerFunc handles a request already bound into R.
type HandlerFunc[R any] func(ctx context.Context, req R) Response

// Response renders itself, setting headers, status and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses part of a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes an error reply for a failed bind or render.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Wrap converts a typed handler into an http.HandlerFunc. Binders run in
// order; the first failure goes to onError and the handler is not called.
func Wrap[R any](h HandlerFunc[R], onError ErrorHandler, binders ...Bind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range binders {
			if err := bind(r, &req); err != nil {
				onError(w, r, err)
				return
			}
		}

		resp := h(r.Context(), req)
		if resp == nil {
			onError(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			onError(w, r, err)
		}
	}
}
