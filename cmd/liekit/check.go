package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

// errLied makes the process exit with status 2 under --fail-on-lie.
var errLied = errors.New("environment lied")

func newCheckCmd() *cobra.Command {
	var (
		html      bool
		failOnLie bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check a recorded snapshot (JSON or YAML, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			snap, err := readSnapshot(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := snap.Validate(); err != nil {
				return err
			}

			v := newRunner(cfg, newLogger(cfg)).Run(cmd.Context(), snap)
			if err := writeVerdict(cmd.Context(), cmd.OutOrStdout(), v, html); err != nil {
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
	return cmd
}

// readSnapshot decodes YAML for .yaml and .yml files and strict JSON
// otherwise.
func readSnapshot(path string, stdin io.Reader) (*lies.Snapshot, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap lies.Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&snap)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&snap)
	}
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
