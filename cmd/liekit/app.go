package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/liekit/pkg/browserprobe"
	"github.com/dmitrymomot/liekit/pkg/config"
	"github.com/dmitrymomot/liekit/pkg/httpserver"
	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/ratelimiter"
	"github.com/dmitrymomot/liekit/pkg/reports"
	"github.com/dmitrymomot/liekit/pkg/requestid"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"liekit"`
	LogLevel string `env:"LOG_LEVEL"`

	ProbeEndpoint bool  `env:"PROBE_ENDPOINT_ENABLED" envDefault:"false"` // ProbeEndpoint exposes POST /v1/probe, which opens arbitrary URLs.
	RateLimit     bool  `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	MaxBodyBytes  int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`

	CacheSize int           `env:"VERDICT_CACHE_SIZE" envDefault:"1024"` // CacheSize bounds the in-process cache used when REDIS_URL is unset. Zero disables it.
	CacheTTL  time.Duration `env:"VERDICT_CACHE_TTL" envDefault:"1h"`

	HTTP    httpserver.Config
	Lies    lies.Config
	Workers workerscope.Config
	Browser browserprobe.Config
	Limits  ratelimiter.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// newLogger writes to stderr so stdout stays free for verdicts.
func newLogger(cfg appConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

func newRunner(cfg appConfig, log *slog.Logger) *lies.Runner {
	orch := workerscope.New(cfg.Workers, workerscope.WithLogger(log))
	return lies.NewRunner(lies.NewEngine(cfg.Lies, lies.WithLogger(log)), orch, lies.WithLogger(log))
}

// storage is the repository with whatever backends the environment names,
// their readiness checks and the connections to close on exit.
type storage struct {
	repo    *reports.Repository
	checks  []httpserver.Check
	closers []io.Closer
}

func (s *storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStorage connects every backend whose URL is set. Without any, verdicts
// live in memory.
func openStorage(ctx context.Context, app appConfig, log *slog.Logger) (*storage, error) {
	s := &storage{}
	opts := []reports.Option{reports.WithLogger(log)}

	if os.Getenv("PG_CONN_URL") != "" {
		var cfg reports.PostgresConfig
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := reports.ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, closerFunc(func() error { pool.Close(); return nil }))
		if err := reports.MigratePostgres(ctx, pool, cfg, log); err != nil {
			return nil, errors.Join(err, s.Close())
		}
		store := reports.NewPostgresStore(pool)
		opts = append(opts, reports.WithStore(store))
		s.checks = append(s.checks, httpserver.Check{Name: "postgres", Fn: store.Healthcheck()})
	}

	if os.Getenv("MONGODB_URL") != "" {
		var cfg reports.MongoConfig
		if err := config.Load(&cfg); err != nil {
			return nil, errors.Join(err, s.Close())
		}
		client, err := reports.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.closers = append(s.closers, closerFunc(func() error { return client.Disconnect(context.Background()) }))
		store := reports.NewMongoStore(client, cfg)
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, errors.Join(err, s.Close())
		}
		opts = append(opts, reports.WithStore(store))
		s.checks = append(s.checks, httpserver.Check{Name: "mongodb", Fn: store.Healthcheck()})
	}

	if os.Getenv("REDIS_URL") != "" {
		var cfg reports.RedisConfig
		if err := config.Load(&cfg); err != nil {
			return nil, errors.Join(err, s.Close())
		}
		client, err := reports.ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.closers = append(s.closers, client)
		cache := reports.NewCache(client, cfg)
		opts = append(opts, reports.WithCache(cache))
		s.checks = append(s.checks, httpserver.Check{Name: "redis", Fn: cache.Healthcheck()})
	} else if app.CacheSize > 0 {
		opts = append(opts, reports.WithCache(reports.NewLocalCache(app.CacheSize, app.CacheTTL)))
	}

	s.repo = reports.NewRepository(opts...)
	return s, nil
}
