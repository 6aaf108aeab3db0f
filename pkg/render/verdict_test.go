package render_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/render"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

func evaluate(t *testing.T, s lies.Signals, w *workerscope.Result) lies.Verdict {
	t.Helper()
	v := lies.NewEngine(lies.DefaultConfig()).Evaluate(context.Background(), s, w, nil)
	v.ID = "pass-1"
	v.Hash = "6cc43f858fbb763301637b5af970e2a46b46f461f27e5a0f41e009c59b827b25"
	return v
}

func TestVerdict_Passed(t *testing.T) {
	t.Parallel()

	v := evaluate(t, lies.Signals{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		Platform:  "Win32",
	}, nil)

	html, err := render.String(context.Background(), render.Verdict(v))
	require.NoError(t, err)

	assert.Contains(t, html, `class="verdict passed" id="verdict-pass-1"`)
	assert.Contains(t, html, "<h2>Passed</h2>")
	assert.Contains(t, html, "<strong>Device</strong>: Windows 10 (64-bit)")
	assert.Contains(t, html, "<strong>Hardware Concurrency</strong>")
	assert.NotContains(t, html, "hash: none")
	assert.NotContains(t, html, `class="fail"`)
	assert.NotContains(t, html, "Erratic")
	assert.Contains(t, html, "Errors Captured</strong> (0)")
}

func TestVerdict_Lied(t *testing.T) {
	t.Parallel()

	mem := 16.0
	v := evaluate(t, lies.Signals{
		UserAgent:    "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36",
		Platform:     "Win32",
		DeviceMemory: &mem,
		Voices:       []signals.Voice{{Name: "<script>Microsoft</script>", Lang: "en-US"}},
	}, &workerscope.Result{
		Probe:  workerscope.Probe{Type: workerscope.Shared, UserAgent: "Mozilla/5.0 (Windows NT 10.0)"},
		System: signals.SystemWindows,
		Device: "Windows 10",
	})
	v.Errors = errcapture.Report{Data: []errcapture.Captured{{TrustedMessage: "only a message here"}}}

	html, err := render.String(context.Background(), render.Verdict(v))
	require.NoError(t, err)

	assert.Contains(t, html, `class="verdict lied"`)
	assert.Contains(t, html, "<h2>Lied</h2>")
	assert.Contains(t, html, `<div class="fail"><strong>Platform</strong>: Win32</div>`)
	assert.Contains(t, html, `<div class="fail"><strong>Device Memory</strong>: 16</div>`)
	assert.Contains(t, html, `<strong>Shared Worker</strong>: Windows Windows 10`)
	assert.Contains(t, html, "Linux core does not support Win32")
	assert.Contains(t, html, `<li class="plausibility">deviceMemory too high for Android</li>`)
	assert.Contains(t, html, "<li>undefined - only a message here</li>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

var _ io.Writer = failingWriter{}

func TestVerdict_WriteError(t *testing.T) {
	t.Parallel()

	var c templ.Component = render.Verdict(lies.Verdict{})
	err := c.Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed pipe")
}
