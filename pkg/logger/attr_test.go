package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("pass", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "pass", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"pass id", logger.PassID("p-1"), "pass_id", "p-1"},
		{"family", logger.Family("Windows"), "family", "Windows"},
		{"context type", logger.ContextType("shared"), "context_type", "shared"},
		{"hash", logger.Hash("deadbeef"), "hash", "deadbeef"},
		{"passed", logger.Passed(true), "passed", true},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
		{"component", logger.Component("lies"), "component", "lies"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.key, tc.attr.Key)
			assert.Equal(t, tc.want, tc.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	assert.True(t, logger.PassID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Family("").Equal(slog.Attr{}))
	assert.True(t, logger.Hash("").Equal(slog.Attr{}))
}
