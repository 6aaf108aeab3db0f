package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/logger"
)

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithDevelopment("liekit"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=liekit")
	assert.Contains(t, output, "env=development")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithProduction("liekit"),
		logger.WithOutput(buf),
	)
	log.Debug("hidden")
	log.Info("msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "liekit", entry["service"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, "msg", entry["msg"])
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
	}{
		{"production", true},
		{"prod", true},
		{"development", false},
		{"", false},
		{"qa", false},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tc.env, "liekit"), logger.WithOutput(buf))
			log.Info("msg")
			var entry map[string]any
			err := json.Unmarshal(buf.Bytes(), &entry)
			if tc.wantJSON {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWithLevelName(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = logger.New(logger.WithOutput(buf), logger.WithLevelName("nonsense"))
	log.Info("default level")
	assert.Contains(t, buf.String(), "default level")
}

func TestWithExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	type key string
	k := key("id")
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(k); v != nil {
			return slog.String("id", v.(string)), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(
		logger.WithProduction("liekit"),
		logger.WithOutput(buf),
		logger.WithContextExtractors(extractor, nil),
	)
	ctx := context.WithValue(context.Background(), k, "123")
	log.With(logger.Component("lies")).WithGroup("pass").InfoContext(ctx, "msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lies", entry["component"])
	pass, ok := entry["pass"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "123", pass["id"])
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []logger.Option
		wantJSON bool
	}{
		{name: "default is json", wantJSON: true},
		{name: "text", opts: []logger.Option{logger.WithTextFormatter()}},
		{name: "json after text", opts: []logger.Option{logger.WithTextFormatter(), logger.WithJSONFormatter()}, wantJSON: true},
		{name: "explicit text format", opts: []logger.Option{logger.WithFormat(logger.FormatText)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(append(tc.opts, logger.WithOutput(buf))...)
			log.Debug("below default level")
			log.Info("verdict stored", logger.Hash("abc123"))

			out := buf.String()
			assert.NotContains(t, out, "below default level")
			var entry map[string]any
			if !tc.wantJSON {
				assert.Error(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Contains(t, out, "hash=abc123")
				return
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "INFO", entry["level"])
			assert.Equal(t, "abc123", entry["hash"])
		})
	}
}

func TestWithAttr(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithAttr(logger.Component("reports"), slog.Int("shard", 2)),
	)
	log.Info("saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reports", entry["component"])
	assert.EqualValues(t, 2, entry["shard"])
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	type passKey struct{}
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("pass_id", passKey{}),
		logger.WithContextValue("", passKey{}),
	)

	log.InfoContext(context.Background(), "no pass")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "pass_id")

	buf.Reset()
	ctx := context.WithValue(context.Background(), passKey{}, "p-7")
	log.InfoContext(ctx, "with pass")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "p-7", entry["pass_id"])
}

func TestWithFormat_Unknown(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, `invalid log format "yaml": must be "json" or "text"`, func() {
		logger.New(logger.WithFormat(logger.Format("yaml")))
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithProduction("liekit"), logger.WithOutput(buf)))
	slog.Warn("served by default logger")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "served by default logger", entry["msg"])
	assert.Equal(t, "liekit", entry["service"])
}
