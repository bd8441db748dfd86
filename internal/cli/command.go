package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/config"
	"github.com/idelchi/selectfile/internal/integration"
	"github.com/idelchi/selectfile/internal/logger"
)

var (
	// ErrCancelled is returned when the user leaves the picker without choosing.
	ErrCancelled = errors.New("selection cancelled")
	// ErrSelection is returned when the chosen entry could not be inspected.
	ErrSelection = errors.New("selection failed")
	// ErrNotDirectory is returned when the picker's start path is missing or not a directory.
	ErrNotDirectory = errors.New("start path is not a directory")
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// globalOptions are shared by every command.
type globalOptions struct {
	// Config is an explicit config file path.
	Config string
	// Debug enables debug logging.
	Debug bool
	// LogFile receives log output.
	LogFile string
}

// pickOptions are the picker flags.
type pickOptions struct {
	globalOptions

	Files  bool
	Dirs   bool
	Hidden bool
	Sort   string
	Order  string
	// Output is one of path, json or table.
	Output string
}

// reportOptions are the report command flags.
type reportOptions struct {
	globalOptions

	Top      int
	Depth    int
	Dirs     bool
	Excludes []string
	// Output is one of table or json.
	Output string
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with the process arguments, cancelling work when ctx is done.
func (c CLI) ExecuteContext(ctx context.Context) error {
	return c.Command().ExecuteContext(ctx)
}

// Command builds the command tree.
func (c CLI) Command() *cobra.Command {
	var options pickOptions

	root := &cobra.Command{
		Use:   "selectfile [path]",
		Short: "Pick a file or folder in an interactive terminal browser",
		Long: heredoc.Doc(`
			selectfile opens a terminal browser in path (the current directory by default)
			and prints the chosen file or folder to stdout.

			The browser is drawn on stderr, so the result can be captured:

				vim "$(selectfile)"

			Folders show their recursive size, computed in the background and remembered
			for the session. Use --output json or --output table for the full metadata:
			size, timestamps, read-only flag, symlink state and Python virtual environment
			detection.

			Defaults are read from ~/.config/selectfile/config.yaml; flags take precedence.

			Exit status is 1 when the selection is cancelled and 2 when the chosen entry
			could not be inspected.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
			}

			cfg, err := loadConfig(options.globalOptions)
			if err != nil {
				return err
			}

			if err := options.apply(cmd, cfg); err != nil {
				return err
			}

			return runPicker(cmd, cfg, options, dir)
		},
	}

	root.SetVersionTemplate("{{.Version}}\n")

	persistent := root.PersistentFlags()
	persistent.StringVarP(&options.Config, "config", "c", "", "Config file (default ~/.config/selectfile/config.yaml)")
	persistent.BoolVar(&options.Debug, "debug", false, "Enable debug logging")
	persistent.StringVar(&options.LogFile, "log-file", "", "Write logs to this file")

	flags := root.Flags()
	flags.BoolVar(&options.Files, "files", true, "Allow selecting files")
	flags.BoolVar(&options.Dirs, "dirs", false, "Allow selecting folders")
	flags.BoolVarP(&options.Hidden, "hidden", "a", false, "Show hidden files")
	flags.StringVarP(&options.Sort, "sort", "s", browser.SortByName.String(),
		"Sort by: name, created, accessed, modified, size or extension")
	flags.StringVar(&options.Order, "order", browser.Ascending.String(), "Sort order: asc or desc")
	flags.StringVarP(&options.Output, "output", "o", "path", "Output format: path, json or table")
	flags.SortFlags = false

	root.AddCommand(newReportCommand(&options.globalOptions), newInitCommand())

	return root
}

// apply validates the flags and lays the explicitly set ones over cfg.
func (o pickOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	if allowed := []string{"path", "json", "table"}; !slices.Contains(allowed, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowed)
	}

	flags := cmd.Flags()

	if flags.Changed("files") {
		cfg.Browser.SelectFiles = o.Files
	}

	if flags.Changed("dirs") {
		cfg.Browser.SelectDirs = o.Dirs
	}

	if flags.Changed("hidden") {
		cfg.Browser.ShowHidden = o.Hidden
	}

	if flags.Changed("sort") {
		cfg.Browser.SortMode = o.Sort
	}

	if flags.Changed("order") {
		cfg.Browser.SortOrder = o.Order
	}

	if o.Debug {
		cfg.LogLevel = logger.LevelDebug.String()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return nil
}

func newReportCommand(global *globalOptions) *cobra.Command {
	var options reportOptions

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Report the largest files or folders below a directory",
		Long: heredoc.Doc(`
			report walks path (the current directory by default) in parallel and lists
			the largest files, or with --dirs the folders holding the most bytes, along
			with totals per file extension.

			Symbolic links are not followed. Paths matching an --exclude regular
			expression are skipped. A progress line is shown on stderr when it is a
			terminal and the output is a table.
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.globalOptions = *global

			cfg, err := loadConfig(options.globalOptions)
			if err != nil {
				return err
			}

			if err := options.apply(cmd, cfg); err != nil {
				return err
			}

			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			return runReport(cmd, cfg, options, path)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&options.Top, "top", "t", config.DefaultConfig().Report.TopN, "Number of entries to list")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	flags.BoolVar(&options.Dirs, "dirs", false, "Aggregate by folder instead of listing files")
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", config.DefaultConfig().Report.Excludes,
		"Regex patterns to exclude")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: table or json")
	flags.SortFlags = false

	return cmd
}

func (o *reportOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	if allowed := []string{"table", "json"}; !slices.Contains(allowed, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowed)
	}

	if o.Depth < 0 {
		return errors.New("depth cannot be negative")
	}

	if o.Debug {
		cfg.LogLevel = logger.LevelDebug.String()
	}

	flags := cmd.Flags()

	if !flags.Changed("top") {
		o.Top = cfg.Report.TopN
	}

	if !flags.Changed("exclude") {
		o.Excludes = cfg.Report.Excludes
	}

	if o.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", o.Top)
	}

	return nil
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the zsh integration script",
		Long: heredoc.Doc(`
			init prints a zsh widget that opens selectfile on Ctrl-T and inserts the
			chosen path at the cursor. Add this to ~/.zshrc:

				eval "$(selectfile init)"
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := integration.Render()
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return nil
		},
	}
}

// loadConfig reads the config file named by --config or the default location.
func loadConfig(global globalOptions) (*config.Config, error) {
	cfg, err := config.Load(global.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// openLogger returns the logger for a run and a function releasing its file.
// Without --log-file, logs go to stderr for the report and nowhere for the picker.
func openLogger(cfg *config.Config, global globalOptions, fallback *os.File) (*logger.Logger, func(), error) {
	if global.LogFile == "" {
		if fallback == nil {
			return logger.Discard(), func() {}, nil
		}

		return logger.New(fallback, cfg.Level()), func() {}, nil
	}

	f, err := os.OpenFile(global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // User-chosen log path
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return logger.New(f, cfg.Level()), func() { _ = f.Close() }, nil
}
