package report

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// ExtStat holds the totals of one file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Item is a file or directory with its size.
type Item struct {
	// Path is relative to the walked folder, slash separated.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Stats is the outcome of a walk.
type Stats struct {
	// Root is the folder that was walked.
	Root string `json:"root"`
	// Count is the number of files, or directories in directory mode.
	Count int64 `json:"count"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes"`
	// Extensions maps extensions (with the dot) to totals. Empty in directory mode.
	Extensions map[string]ExtStat `json:"extensions"`
	// Top holds the largest entries, largest first.
	Top []Item `json:"top"`
	// Errors is the number of entries that could not be inspected.
	Errors int64 `json:"errors"`
	// Elapsed is the walk duration.
	Elapsed time.Duration `json:"elapsed"`
	// Dirs is set when sizes are aggregated per directory.
	Dirs bool `json:"dirs"`
	// TopN is the number of entries that were requested.
	TopN int `json:"top_n"`
}

// Share returns size as a percentage of the total.
func (s *Stats) Share(size int64) float64 {
	if s.TotalBytes <= 0 {
		return 0
	}

	return 100 * float64(size) / float64(s.TotalBytes)
}

// collector gathers results from concurrent fastwalk callbacks.
type collector struct {
	mu     sync.Mutex
	topN   int
	dirs   bool
	exts   map[string]ExtStat
	sizes  map[string]int64
	files  []Item
	count  int64
	total  int64
	errors int64
}

func newCollector(topN int, dirs bool) *collector {
	return &collector{
		topN:  topN,
		dirs:  dirs,
		exts:  make(map[string]ExtStat),
		sizes: make(map[string]int64),
	}
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors++
}

// addFile records a regular file at rel, relative to the root.
func (c *collector) addFile(rel string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total += size

	if c.dirs {
		dir := filepath.Dir(rel)
		if _, seen := c.sizes[dir]; !seen {
			c.count++
		}

		c.sizes[dir] += size

		return
	}

	c.count++

	ext := filepath.Ext(rel)
	stat := c.exts[ext]
	stat.Count++
	stat.Size += size
	c.exts[ext] = stat

	c.files = append(c.files, Item{Path: rel, Size: size})
}

func (c *collector) progress() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count, c.total
}

func (c *collector) finalize(root string) *Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.files
	exts := c.exts

	if c.dirs {
		items = make([]Item, 0, len(c.sizes))
		for dir, size := range c.sizes {
			items = append(items, Item{Path: dir, Size: size})
		}

		exts = map[string]ExtStat{}
	}

	slices.SortFunc(items, func(a, b Item) int {
		return cmp.Or(cmp.Compare(b.Size, a.Size), cmp.Compare(a.Path, b.Path))
	})

	if len(items) > c.topN {
		items = items[:c.topN]
	}

	top := make([]Item, len(items))
	for i, item := range items {
		top[i] = Item{Path: strings.TrimPrefix(filepath.ToSlash(item.Path), "./"), Size: item.Size}
	}

	return &Stats{
		Root:       root,
		Count:      c.count,
		TotalBytes: c.total,
		Extensions: exts,
		Top:        top,
		Errors:     c.errors,
		Dirs:       c.dirs,
		TopN:       c.topN,
	}
}
