package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/liekit/internal/server"
	"github.com/dmitrymomot/liekit/pkg/browserprobe"
	"github.com/dmitrymomot/liekit/pkg/httpserver"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/ratelimiter"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			store, err := openStorage(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Warn("storage close failed", logger.Error(err))
				}
			}()

			opts := []server.Option{
				server.WithLogger(log),
				server.WithChecks(store.checks...),
				server.WithReadyTimeout(cfg.HTTP.ReadyTimeout),
				server.WithBodyLimit(cfg.MaxBodyBytes),
			}

			if cfg.RateLimit {
				limiter, err := ratelimiter.New(cfg.Limits)
				if err != nil {
					return err
				}
				go limiter.Run(ctx, time.Minute)
				opts = append(opts, server.WithRateLimiter(limiter, ratelimiter.ClientIP(cfg.Limits.TrustProxy)))
			}

			if cfg.ProbeEndpoint {
				b, err := browserprobe.Launch(ctx, cfg.Browser, browserprobe.WithLogger(log))
				if err != nil {
					return err
				}
				defer b.Close()
				opts = append(opts, server.WithProber(b))
			}

			srv := server.New(newRunner(cfg, log), store.repo, opts...)
			return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, srv.Routes())
		},
	}
}
