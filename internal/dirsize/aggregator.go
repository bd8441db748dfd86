package dirsize

import (
	"path/filepath"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const (
	// DefaultMaxDepth is the recursion depth past which subtrees contribute nothing.
	DefaultMaxDepth = 100
	// DefaultMaxItems is the number of entries scanned per directory.
	DefaultMaxItems = 1000
	// DefaultCacheSize is the number of directory totals kept in memory.
	DefaultCacheSize = 500
)

// Logger receives diagnostics about entries the walk had to skip.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Options configures an Aggregator. Zero values select the defaults.
type Options struct {
	// MaxDepth is the deepest level that is still descended into.
	MaxDepth int
	// MaxItems caps the entries scanned in any single directory.
	MaxItems int
	// CacheSize is the capacity of the memoization cache.
	CacheSize int
	// FS provides listing, lstat and canonicalization. Defaults to OSFS.
	FS FS
	// Logger receives debug output for skipped entries.
	Logger Logger
}

// Aggregator sums file sizes below a directory and memoizes the results.
//
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	maxDepth int
	maxItems int
	fs       FS
	log      Logger
	cache    *simplelru.LRU[string, int64]
}

// New creates an Aggregator, filling unset options with their defaults.
func New(opts Options) *Aggregator {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}

	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	if opts.FS == nil {
		opts.FS = OSFS{}
	}

	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	// NewLRU only fails for a non-positive size, which is excluded above.
	cache, _ := simplelru.NewLRU[string, int64](opts.CacheSize, nil)

	return &Aggregator{
		maxDepth: opts.MaxDepth,
		maxItems: opts.MaxItems,
		fs:       opts.FS,
		log:      opts.Logger,
		cache:    cache,
	}
}

// Size returns the total size in bytes of the regular files below path.
//
// The path is assumed to be a readable directory. Unreadable entries, vanished
// paths, symlinks and special files contribute zero; nothing is reported to the
// caller.
func (a *Aggregator) Size(path string) int64 {
	return a.size(path, 0, make(map[string]struct{}))
}

// Cached reports whether a total for path is memoized, without refreshing its recency.
func (a *Aggregator) Cached(path string) bool {
	return a.cache.Contains(path)
}

// Len returns the number of memoized totals.
func (a *Aggregator) Len() int {
	return a.cache.Len()
}

func (a *Aggregator) size(path string, depth int, visited map[string]struct{}) int64 {
	if depth > a.maxDepth {
		a.log.Debugf("dirsize: depth limit reached at %s", path)

		return 0
	}

	canon := a.canonical(path)
	if _, seen := visited[canon]; seen {
		a.log.Debugf("dirsize: already visited %s (%s)", path, canon)

		return 0
	}

	visited[canon] = struct{}{}

	if total, ok := a.cache.Get(path); ok {
		return total
	}

	var total int64

	entries, err := a.fs.ReadDir(path)
	if err != nil {
		a.log.Debugf("dirsize: listing %s: %v", path, err)
	}

	for i, entry := range entries {
		if i >= a.maxItems {
			a.log.Debugf("dirsize: %s has more than %d entries, remainder skipped", path, a.maxItems)

			break
		}

		child := filepath.Join(path, entry.Name())

		info, err := a.fs.Lstat(child)
		if err != nil {
			a.log.Debugf("dirsize: stat %s: %v", child, err)

			continue
		}

		switch mode := info.Mode(); {
		case mode.IsRegular():
			total += info.Size()
		case mode.IsDir():
			total += a.size(child, depth+1, visited)
		}
	}

	a.cache.Add(path, total)

	return total
}

// canonical resolves path for cycle detection. Paths that cannot be resolved
// fall back to their cleaned absolute form.
func (a *Aggregator) canonical(path string) string {
	if resolved, err := a.fs.EvalSymlinks(path); err == nil {
		return resolved
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return filepath.Clean(path)
}
