package browserprobe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-rod/rod"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

// Page is one open tab. It reads signals through the DevTools protocol.
type Page struct {
	page      *rod.Page
	url       string
	scriptURL string
	log       *slog.Logger
}

var _ lies.Client = (*Page)(nil)

// URL is the address the tab was opened on.
func (p *Page) URL() string { return p.url }

// Read returns the main-thread signals. Voices are left for Voices.
func (p *Page) Read(ctx context.Context) (lies.Signals, error) {
	var s lies.Signals
	if err := p.evalJSON(ctx, &s, readSignalsJS); err != nil {
		return lies.Signals{}, err
	}
	return s, nil
}

// Voices waits for the speech-synthesis roster. It returns nil when speech
// synthesis is unsupported.
func (p *Page) Voices(ctx context.Context) ([]signals.Voice, error) {
	var voices []signals.Voice
	if err := p.evalJSON(ctx, &voices, readVoicesJS); err != nil {
		return nil, err
	}
	return voices, nil
}

// Workers returns the worker environment of the tab, or nil when no
// bootstrap script could be made available.
func (p *Page) Workers() workerscope.Environment {
	if p.scriptURL == "" {
		return nil
	}
	return &workers{page: p}
}

// Close closes the tab.
func (p *Page) Close() error {
	if p.page == nil {
		return nil
	}
	return p.page.Close()
}

func (p *Page) blobScript(ctx context.Context) (string, error) {
	res, err := p.page.Context(ctx).Eval(blobScriptJS, string(WorkerScript()))
	if err != nil {
		return "", scriptError(err)
	}
	return res.Value.Str(), nil
}

func (p *Page) evalJSON(ctx context.Context, dst any, js string, args ...any) error {
	res, err := p.page.Context(ctx).Eval(js, args...)
	if err != nil {
		return scriptError(err)
	}
	if err := json.Unmarshal([]byte(res.Value.Str()), dst); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// workers hosts worker contexts inside a tab.
type workers struct {
	page *Page
}

var _ workerscope.Environment = (*workers)(nil)

func (w *workers) Capability(ctx context.Context, t workerscope.ContextType) (workerscope.Capability, error) {
	var c struct {
		Supported   bool   `json:"supported"`
		Constructor string `json:"constructor"`
	}
	if err := w.page.evalJSON(ctx, &c, capabilityJS, t.String()); err != nil {
		return workerscope.Capability{}, err
	}
	return workerscope.Capability{Supported: c.Supported, Constructor: c.Constructor}, nil
}

func (w *workers) Exchange(ctx context.Context, t workerscope.ContextType, req workerscope.Request) (workerscope.Reply, error) {
	var reply workerscope.Reply
	if err := w.page.evalJSON(ctx, &reply, exchangeJS, t.String(), req, w.page.scriptURL, ServiceChannel); err != nil {
		return workerscope.Reply{}, err
	}
	return reply, nil
}
