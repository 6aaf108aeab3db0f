// Command liekit checks browser environments for spoofed platform signals.
//
// Usage:
//
//	liekit serve                 # HTTP API
//	liekit check snapshot.yaml   # check a recorded snapshot, verdict JSON on stdout
//	liekit probe https://x.test  # live pass in a local Chrome
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, errLied) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "liekit:", err)
		os.Exit(1)
	}
}
