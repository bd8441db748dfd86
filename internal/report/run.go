package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval between progress callbacks.
const DefaultProgressInterval = 500 * time.Millisecond

// DefaultTopN is used when Options.TopN is not positive.
const DefaultTopN = 10

// ErrNotDirectory is returned when the report root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Logger receives debug messages about skipped entries.
type Logger interface {
	Debugf(format string, args ...any)
}

// Options configures a walk.
type Options struct {
	// Path is the directory to walk. Defaults to ".".
	Path string
	// Excludes are regular expressions matched against slash-separated paths.
	Excludes []string
	// TopN is the number of largest entries to keep.
	TopN int
	// Depth limits the walk below Path (0 = unlimited).
	Depth int
	// Dirs aggregates file sizes per containing directory.
	Dirs bool
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives debug output; nil discards it.
	Logger Logger
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// depth returns how many levels path lies below root.
func depth(path, root string) int {
	rel := strings.TrimPrefix(path, root)

	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}

// excluded returns the first pattern matching path, if any.
func excluded(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	slashed := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(slashed) {
			return re
		}
	}

	return nil
}

// startProgress calls hook(count, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgress(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks opt.Path and returns the aggregated statistics.
// Unreadable entries are counted in Stats.Errors and skipped. The walk stops
// with the context error when ctx is done. progressHook, when not nil, is
// called periodically with the running count and byte total.
func Run(ctx context.Context, opt Options, progressHook func(count, bytes int64)) (*Stats, error) {
	log := opt.Logger
	if log == nil {
		log = nopLogger{}
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	root := filepath.Clean(opt.Path)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", root, ErrNotDirectory)
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	patterns := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		patterns = append(patterns, re)
	}

	c := newCollector(opt.TopN, opt.Dirs)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgress(ctx, c, progressHook, opt.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{Follow: false}

	//nolint:varnamelen // d is standard for DirEntry
	err = fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugf("report: error accessing %s: %v", path, err)
			c.addError()

			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if opt.Depth > 0 && depth(path, root) > opt.Depth {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if path != root {
			if re := excluded(path, patterns); re != nil {
				log.Debugf("report: excluding %s (matched %s)", filepath.ToSlash(path), re)

				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			c.addError()

			return nil //nolint:nilerr // Unreadable entries are counted, not fatal
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		c.addFile(rel, fi.Size())

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	stats := c.finalize(root)
	stats.Elapsed = time.Since(start)

	return stats, nil
}
