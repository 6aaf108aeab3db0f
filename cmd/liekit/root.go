package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/liekit/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "liekit",
		Short:         "Detect browsers that lie about their platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load, later files win")

	root.AddCommand(newServeCmd(), newCheckCmd(), newProbeCmd())
	return root
}
