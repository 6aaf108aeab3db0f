package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/liekit/pkg/browserprobe"
	"github.com/dmitrymomot/liekit/pkg/logger"
)

func newProbeCmd() *cobra.Command {
	var (
		html      bool
		failOnLie bool
		store     bool
	)

	cmd := &cobra.Command{
		Use:   "probe [URL]",
		Short: "Run a live pass in Chrome, on URL or on the built-in probe page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			var pageURL string
			if len(args) == 1 {
				pageURL = args[0]
			}

			b, err := browserprobe.Launch(ctx, cfg.Browser, browserprobe.WithLogger(log))
			if err != nil {
				return err
			}
			defer func() {
				if err := b.Close(); err != nil {
					log.Warn("browser close failed", logger.Error(err))
				}
			}()

			v, err := b.Inspect(ctx, newRunner(cfg, log), pageURL)
			if err != nil {
				return err
			}

			if store {
				s, err := openStorage(ctx, cfg, log)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.repo.Save(ctx, v); err != nil {
					return err
				}
			}

			if err := writeVerdict(ctx, cmd.OutOrStdout(), v, html); err != nil {
				return err
			}
			if failOnLie && !v.Passed {
				return errLied
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "print the verdict as an HTML fragment")
	cmd.Flags().BoolVar(&failOnLie, "fail-on-lie", false, "exit with status 2 when the check fails")
	cmd.Flags().BoolVar(&store, "store", false, "save the verdict to the configured stores")
	return cmd
}
