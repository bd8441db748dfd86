package ui

import (
	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/config"
	"github.com/idelchi/selectfile/internal/dirsize"
	"github.com/idelchi/selectfile/internal/selection"
)

// NewDeps wires the listing, sizing and result services from cfg.
func NewDeps(cfg *config.Config, log Logger) Deps {
	if log == nil {
		log = nopLogger{}
	}

	loader := browser.NewLoader(browser.Lister{Venv: selection.NewVenvDetector(cfg.Venv.CacheSize)})
	sizer := browser.NewSizer(dirsize.New(dirsize.Options{
		MaxDepth:  cfg.Size.MaxDepth,
		MaxItems:  cfg.Size.MaxItems,
		CacheSize: cfg.Size.CacheSize,
		Logger:    log,
	}))

	return Deps{
		Loader:  loader,
		Sizer:   sizer,
		Builder: selection.NewBuilder(sizer, loader),
		Logger:  log,
	}
}

// NewOptions returns picker options for dir taken from cfg.
func NewOptions(cfg *config.Config, dir string) Options {
	return Options{
		Dir:            dir,
		SelectFiles:    cfg.Browser.SelectFiles,
		SelectDirs:     cfg.Browser.SelectDirs,
		ShowHidden:     cfg.Browser.ShowHidden,
		SortMode:       cfg.SortMode(),
		SortOrder:      cfg.SortOrder(),
		ReportTopN:     cfg.Report.TopN,
		ReportExcludes: cfg.Report.Excludes,
	}
}
