package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/httpserver"
)

type health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serveHealth(t *testing.T, h http.Handler) (int, health) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, body
}

func TestLiveHandler(t *testing.T) {
	t.Parallel()
	code, body := serveHealth(t, httpserver.LiveHandler())
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alive", body.Status)
}

func TestReadyHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Check{Name: "postgres", Fn: func(context.Context) error { return nil }}
	down := httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }}
	slow := httpserver.Check{Name: "mongo", Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		code, body := serveHealth(t, httpserver.ReadyHandler(nil, time.Second, ok))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "ok", body.Checks["postgres"])
	})

	t.Run("no checks is ready", func(t *testing.T) {
		t.Parallel()
		code, body := serveHealth(t, httpserver.ReadyHandler(nil, time.Second))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ready", body.Status)
	})

	t.Run("one failing", func(t *testing.T) {
		t.Parallel()
		code, body := serveHealth(t, httpserver.ReadyHandler(nil, time.Second, ok, down))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "not_ready", body.Status)
		assert.Equal(t, "ok", body.Checks["postgres"])
		assert.Equal(t, "connection refused", body.Checks["redis"])
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()
		code, body := serveHealth(t, httpserver.ReadyHandler(nil, 20*time.Millisecond, slow))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, context.DeadlineExceeded.Error(), body.Checks["mongo"])
	})
}
