package browserprobe

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/logger"
)

// Option configures a Browser.
type Option func(*Browser)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Browser) {
		if l != nil {
			b.log = l
		}
	}
}

// Browser is one Chrome process plus the loopback server hosting the probe
// page. It is safe for concurrent use; every Open gets its own tab.
type Browser struct {
	cfg Config
	log *slog.Logger

	mu     sync.Mutex
	rod    *rod.Browser
	lnch   *launcher.Launcher
	assets *assetServer
	closed bool
}

// Launch starts Chrome, or connects to cfg.RemoteURL, and the asset server.
func Launch(ctx context.Context, cfg Config, opts ...Option) (*Browser, error) {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultConfig().NavigationTimeout
	}
	if cfg.AssetsAddr == "" {
		cfg.AssetsAddr = DefaultConfig().AssetsAddr
	}

	b := &Browser{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("browserprobe"))

	wsURL := cfg.RemoteURL
	if wsURL == "" {
		l := launcher.New().Context(ctx).Headless(cfg.Headless)
		if cfg.Bin != "" {
			l = l.Bin(cfg.Bin)
		}
		l = l.Set("disable-blink-features", "AutomationControlled")

		u, err := l.Launch()
		if err != nil {
			return nil, errors.Join(ErrLaunch, err)
		}
		wsURL = u
		b.lnch = l
		b.log.InfoContext(ctx, "launched local chrome", slog.String("url", wsURL))
	} else {
		b.log.InfoContext(ctx, "connecting to remote chrome", slog.String("url", wsURL))
	}

	rb := rod.New().ControlURL(wsURL)
	if err := rb.Connect(); err != nil {
		b.cleanup()
		return nil, errors.Join(ErrConnect, err)
	}
	b.rod = rb

	srv, err := startAssets(cfg.AssetsAddr)
	if err != nil {
		b.cleanup()
		return nil, err
	}
	b.assets = srv

	return b, nil
}

// ProbeURL is the address of the built-in probe page.
func (b *Browser) ProbeURL() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.assets == nil {
		return ""
	}
	return b.assets.url
}

// Open creates a tab on pageURL. An empty pageURL opens the built-in probe
// page, where every worker context type can load the bootstrap script.
// On foreign pages the script is loaded from a blob URL, which service
// workers refuse; the orchestrator then falls back to the other contexts.
func (b *Browser) Open(ctx context.Context, pageURL string) (*Page, error) {
	b.mu.Lock()
	if b.closed || b.rod == nil {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	rb, local := b.rod, b.assets.url
	b.mu.Unlock()

	if pageURL == "" {
		pageURL = local + "/"
	}

	var (
		page *rod.Page
		err  error
	)
	if b.cfg.Stealth {
		page, err = stealth.Page(rb)
	} else {
		page, err = rb.Page(proto.TargetCreateTarget{URL: ""})
	}
	if err != nil {
		return nil, errors.Join(ErrNavigate, err)
	}

	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavigationTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		_ = page.Close()
		return nil, errors.Join(ErrNavigate, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		b.log.WarnContext(ctx, "page load not confirmed", slog.String("url", pageURL), logger.Error(err))
	}

	p := &Page{page: page, url: pageURL, log: b.log}
	if pageURL == local+"/" {
		p.scriptURL = local + WorkerScriptPath
	} else if p.scriptURL, err = p.blobScript(navCtx); err != nil {
		b.log.WarnContext(ctx, "worker script unavailable", slog.String("url", pageURL), logger.Error(err))
	}
	return p, nil
}

// Inspect opens pageURL, runs one pass and closes the tab.
func (b *Browser) Inspect(ctx context.Context, r *lies.Runner, pageURL string) (lies.Verdict, error) {
	start := time.Now()
	p, err := b.Open(ctx, pageURL)
	if err != nil {
		return lies.Verdict{}, err
	}
	defer func() {
		if err := p.Close(); err != nil {
			b.log.DebugContext(ctx, "tab close failed", logger.Error(err))
		}
	}()

	v := r.Run(ctx, p)
	b.log.DebugContext(ctx, "page inspected", slog.String("url", p.URL()), logger.Duration(time.Since(start)))
	return v, nil
}

// Close stops the asset server and Chrome.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.cleanup()
}

func (b *Browser) cleanup() error {
	var errs []error
	if b.assets != nil {
		errs = append(errs, b.assets.close())
		b.assets = nil
	}
	if b.rod != nil {
		errs = append(errs, b.rod.Close())
		b.rod = nil
	}
	if b.lnch != nil {
		b.lnch.Cleanup()
		b.lnch = nil
	}
	return errors.Join(errs...)
}
