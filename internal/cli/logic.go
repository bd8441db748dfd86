package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/selectfile/internal/config"
	"github.com/idelchi/selectfile/internal/report"
	"github.com/idelchi/selectfile/internal/selection"
	"github.com/idelchi/selectfile/internal/ui"
)

func runPicker(cmd *cobra.Command, cfg *config.Config, options pickOptions, dir string) error {
	// The picker owns the terminal, so logs only go to an explicit file.
	log, closeLog, err := openLogger(cfg, options.globalOptions, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Debugf("starting picker in %s (files=%t dirs=%t)", dir, cfg.Browser.SelectFiles, cfg.Browser.SelectDirs)

	result, err := ui.Run(cmd.Context(), ui.NewOptions(cfg, dir), ui.NewDeps(cfg, log))
	if err != nil {
		return err
	}

	return emit(result, options.Output, cmd.OutOrStdout())
}

// emit writes result in the requested format. A cancelled result writes nothing
// and returns ErrCancelled; a failed one returns ErrSelection with its message.
func emit(result selection.Result, output string, w io.Writer) error {
	if result.IsCancelled() {
		return ErrCancelled
	}

	if result.HasError() {
		return fmt.Errorf("%w: %s: %s", ErrSelection, result.Path(), *result.ErrorMessage)
	}

	switch strings.ToLower(output) {
	case "json":
		return PrintResultJSON(result, w)
	case "table":
		return PrintResultTable(result, w)
	default:
		_, err := fmt.Fprintln(w, result.Path())

		return err
	}
}

func runReport(cmd *cobra.Command, cfg *config.Config, options reportOptions, path string) error {
	log, closeLog, err := openLogger(cfg, options.globalOptions, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := report.Run(cmd.Context(), report.Options{
		Path:     path,
		Excludes: options.Excludes,
		TopN:     options.Top,
		Depth:    options.Depth,
		Dirs:     options.Dirs,
		Logger:   log,
	}, progressHook)

	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Output == "json" {
		return PrintStatsJSON(stats, cmd.OutOrStdout())
	}

	return PrintStatsTable(stats, cmd.OutOrStdout())
}
