package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/liekit/pkg/browserprobe"
	"github.com/dmitrymomot/liekit/pkg/httpserver"
	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/ratelimiter"
	"github.com/dmitrymomot/liekit/pkg/reports"
	"github.com/dmitrymomot/liekit/pkg/requestid"
)

const defaultMaxBody = 1 << 20

// Prober runs a pass inside a live browser tab.
type Prober interface {
	Inspect(ctx context.Context, r *lies.Runner, pageURL string) (lies.Verdict, error)
}

var _ Prober = (*browserprobe.Browser)(nil)

// Server exposes the pass runner and the verdict repository over HTTP.
type Server struct {
	runner *lies.Runner
	repo   *reports.Repository
	log    *slog.Logger

	prober       Prober
	limiter      *ratelimiter.Limiter
	key          ratelimiter.KeyFunc
	checks       []httpserver.Check
	readyTimeout time.Duration
	maxBody      int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithProber enables POST /v1/probe. The endpoint makes the server open
// arbitrary URLs, so leave it off on public deployments.
func WithProber(p Prober) Option {
	return func(s *Server) { s.prober = p }
}

// WithRateLimiter limits the endpoints that run passes.
func WithRateLimiter(l *ratelimiter.Limiter, key ratelimiter.KeyFunc) Option {
	return func(s *Server) {
		s.limiter = l
		s.key = key
	}
}

// WithChecks adds readiness checks.
func WithChecks(checks ...httpserver.Check) Option {
	return func(s *Server) { s.checks = append(s.checks, checks...) }
}

// WithReadyTimeout bounds each readiness check.
func WithReadyTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readyTimeout = d
		}
	}
}

// WithBodyLimit caps request bodies.
func WithBodyLimit(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New creates a server. A nil repository gets an in-memory one.
func New(runner *lies.Runner, repo *reports.Repository, opts ...Option) *Server {
	s := &Server{
		runner:       runner,
		repo:         repo,
		log:          slog.New(slog.DiscardHandler),
		readyTimeout: 2 * time.Second,
		maxBody:      defaultMaxBody,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.repo == nil {
		s.repo = reports.NewRepository(reports.WithLogger(s.log))
	}
	if s.key == nil {
		s.key = ratelimiter.ClientIP(false)
	}
	s.log = s.log.With(logger.Component("server"))
	return s
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	onError := NewErrorHandler(s.log)
	body := BindJSON(s.maxBody)
	path := BindPath(chi.URLParam)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, s.logRequests, middleware.Recoverer)

	r.Get("/health/live", httpserver.LiveHandler())
	r.Get("/health/ready", httpserver.ReadyHandler(s.log, s.readyTimeout, s.checks...))

	assets := browserprobe.AssetsHandler()
	r.Handle("/", assets)
	r.Handle(browserprobe.WorkerScriptPath, assets)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(ratelimiter.Middleware(s.limiter, s.key))
			}
			r.Post("/inspect", Wrap[lies.Snapshot](s.inspect, onError, body))
			r.Post("/inspect/html", Wrap[lies.Snapshot](s.inspectHTML, onError, body))
			if s.prober != nil {
				r.Post("/probe", Wrap[probeRequest](s.probe, onError, body))
			}
		})
		r.Get("/inspect/{hash}", Wrap[hashRequest](s.latest, onError, path))
		r.Get("/verdicts/{id}", Wrap[idRequest](s.verdict, onError, path))
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.DebugContext(r.Context(), "request served",
			logger.RequestID(requestid.FromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
