// Command selectfile is an interactive terminal file and folder picker.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idelchi/selectfile/internal/cli"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.New(version).ExecuteContext(ctx)

	stop()

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrCancelled):
		os.Exit(1)
	case errors.Is(err, cli.ErrSelection):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2) //nolint:mnd // Documented exit status
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
