package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/liekit/pkg/hashify"
	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/signals"
)

type row struct {
	label   string
	value   string
	sources []signals.Source
}

// Verdict renders a verdict as an HTML fragment: one row per signal, each
// marked as passed or lied, followed by the explanation of every lie.
func Verdict(v lies.Verdict) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		title := cases.Title(language.English)

		status := "passed"
		if !v.Passed {
			status = "lied"
		}
		ew.printf(`<section class="verdict %s" id="verdict-%s">`, status, esc(v.ID))
		ew.printf(`<h2>%s</h2>`, esc(title.String(status)))
		ew.printf(`<div class="ellipsis">hash: %s</div>`, esc(shortHash(v.Hash)))

		for _, r := range rows(v) {
			class := "pass"
			if len(r.sources) > 0 && lied(v, r.sources) {
				class = "fail"
			}
			ew.printf(`<div class="%s"><strong>%s</strong>: %s</div>`, class, esc(title.String(r.label)), esc(r.value))
		}

		if len(v.Disagreements) > 0 {
			ew.printf(`<div class="erratic"><strong>Erratic</strong><ul>`)
			for _, d := range v.Disagreements {
				ew.printf(`<li class="%s">%s</li>`, esc(string(d.Kind)), esc(d.Reason))
			}
			ew.printf(`</ul></div>`)
		}

		n := len(v.Errors.Data)
		ew.printf(`<div class="%s"><strong>Errors Captured</strong> (%d)`, errorsClass(n), n)
		if n > 0 {
			ew.printf(`<ol>`)
			for _, e := range v.Errors.Data {
				ew.printf(`<li>%s - %s</li>`, esc(orNone(e.TrustedName)), esc(orNone(e.TrustedMessage)))
			}
			ew.printf(`</ol>`)
		}
		ew.printf(`</div></section>`)
		return ew.err
	})
}

func rows(v lies.Verdict) []row {
	device := ""
	if v.Identity != nil {
		device = v.Identity.Description
	}
	platform, touch, memory, cores, voices := "", "", "", "", ""
	for _, r := range v.Readings {
		switch r.Source {
		case signals.SourcePlatform:
			platform = raw(r.Raw)
		case signals.SourceTouchPoints:
			touch = raw(r.Raw)
		case signals.SourceDeviceMemory:
			memory = raw(r.Raw)
		case signals.SourceHardwareConcurrency:
			cores = raw(r.Raw)
		case signals.SourceVoices:
			voices = raw(r.Raw)
		}
	}

	rs := []row{
		{label: "core", value: v.Core, sources: []signals.Source{signals.SourcePlatform}},
		{label: "system", value: v.System, sources: []signals.Source{signals.SourceVoices}},
		{label: "device", value: device},
		{label: "platform", value: platform, sources: []signals.Source{signals.SourcePlatform}},
		{label: "touch", value: touch, sources: []signals.Source{signals.SourceTouchPoints}},
		{label: "device memory", value: memory, sources: []signals.Source{signals.SourceDeviceMemory}},
		{label: "hardware concurrency", value: cores, sources: []signals.Source{signals.SourceHardwareConcurrency}},
		{label: "voices", value: voices, sources: []signals.Source{signals.SourceVoices}},
	}
	if v.Worker != nil {
		rs = append(rs, row{
			label:   v.Worker.Type.String() + " worker",
			value:   v.Worker.System + " " + v.Worker.Device,
			sources: []signals.Source{signals.SourceWorkerUserAgent},
		})
	}
	return rs
}

func lied(v lies.Verdict, sources []signals.Source) bool {
	for _, s := range sources {
		if len(v.Between(s)) > 0 {
			return true
		}
	}
	return false
}

func raw(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		return strings.Join(x, ", ")
	default:
		return fmt.Sprint(x)
	}
}

func shortHash(h string) string {
	if h == "" {
		return "none"
	}
	return hashify.MiniString(h)
}

func errorsClass(n int) string {
	if n > 0 {
		return "errors"
	}
	return "none"
}

func orNone(s string) string {
	if s == "" {
		return "undefined"
	}
	return s
}

func esc(s string) string { return templ.EscapeString(s) }

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
