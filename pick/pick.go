// Package pick runs the interactive file picker from other programs.
//
//	result, err := pick.Select(ctx, pick.Options{Dir: ".", Files: true})
//	if err != nil {
//		return err
//	}
//	if result.IsCancelled() {
//		return nil
//	}
//	fmt.Println(result.Path())
package pick

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/config"
	"github.com/idelchi/selectfile/internal/selection"
	"github.com/idelchi/selectfile/internal/ui"
)

// Result describes the chosen entry. All fields are nil when the user cancelled.
type Result = selection.Result

var (
	// ErrNotDirectory is returned when the start directory does not exist or is not a directory.
	ErrNotDirectory = errors.New("start path is not a directory")
	// ErrNothingSelectable is returned when neither files nor folders may be chosen.
	ErrNothingSelectable = errors.New("at least one of files and folders must be selectable")
)

// Options configures a picker session. The zero value of every field but
// Files and Dirs falls back to the user's config file or the built-in default.
type Options struct {
	// Dir is the start directory. Defaults to the working directory.
	Dir string
	// Title replaces the default header.
	Title string
	// Files allows choosing files.
	Files bool
	// Dirs allows choosing folders.
	Dirs bool
	// ShowHidden lists dot-files from the start.
	ShowHidden bool
	// Sort is a sort key name (name, created, accessed, modified, size, extension).
	Sort string
	// Descending reverses the sort.
	Descending bool
}

// Select shows the picker on the terminal and returns the chosen entry.
func Select(ctx context.Context, opts Options) (Result, error) {
	if !opts.Files && !opts.Dirs {
		return selection.Cancelled(), ErrNothingSelectable
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return selection.Cancelled(), fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	cfg, err := config.Load("")
	if err != nil {
		return selection.Cancelled(), fmt.Errorf("loading config: %w", err)
	}

	cfg.Browser.SelectFiles = opts.Files
	cfg.Browser.SelectDirs = opts.Dirs
	cfg.Browser.ShowHidden = cfg.Browser.ShowHidden || opts.ShowHidden

	if opts.Sort != "" {
		cfg.Browser.SortMode = opts.Sort
	}

	if opts.Descending {
		cfg.Browser.SortOrder = browser.Descending.String()
	}

	if err := cfg.Validate(); err != nil {
		return selection.Cancelled(), err
	}

	uiOpts := ui.NewOptions(cfg, dir)
	uiOpts.Title = opts.Title

	return ui.Run(ctx, uiOpts, ui.NewDeps(cfg, nil))
}

// SelectPath lets the user choose a file below dir and returns its path,
// or "" when the picker was cancelled.
func SelectPath(ctx context.Context, dir string) (string, error) {
	result, err := Select(ctx, Options{Dir: dir, Files: true})
	if err != nil {
		return "", err
	}

	if result.HasError() {
		return "", fmt.Errorf("inspecting %s: %s", result.Path(), *result.ErrorMessage)
	}

	return result.Path(), nil
}
