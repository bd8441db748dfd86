package selection

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// DefaultVenvCacheSize bounds the number of memoized venv lookups.
const DefaultVenvCacheSize = 1000

// venvMarkers are files whose presence marks a directory as a virtual environment.
//
//nolint:gochecknoglobals // Lookup table
var venvMarkers = []string{
	"pyvenv.cfg",
	filepath.Join("bin", "activate"),
	filepath.Join("Scripts", "activate.bat"),
}

// venvChildren are conventional names of a project's environment directory.
//
//nolint:gochecknoglobals // Lookup table
var venvChildren = []string{".venv", "venv", "env"}

// VenvDetector reports whether folders hold a Python virtual environment.
// It is not safe for concurrent use.
type VenvDetector struct {
	cache *simplelru.LRU[string, bool]
	exist func(path string) bool
}

// NewVenvDetector creates a detector remembering up to size answers.
func NewVenvDetector(size int) *VenvDetector {
	if size <= 0 {
		size = DefaultVenvCacheSize
	}

	cache, _ := simplelru.NewLRU[string, bool](size, nil)

	return &VenvDetector{
		cache: cache,
		exist: func(path string) bool {
			_, err := os.Stat(path)

			return err == nil
		},
	}
}

// HasVenv reports whether dir is a virtual environment or directly contains one.
func (d *VenvDetector) HasVenv(dir string) bool {
	if found, ok := d.cache.Get(dir); ok {
		return found
	}

	found := d.isVenv(dir)
	if !found {
		for _, child := range venvChildren {
			if d.isVenv(filepath.Join(dir, child)) {
				found = true

				break
			}
		}
	}

	d.cache.Add(dir, found)

	return found
}

// Len returns the number of memoized answers.
func (d *VenvDetector) Len() int {
	return d.cache.Len()
}

func (d *VenvDetector) isVenv(dir string) bool {
	for _, marker := range venvMarkers {
		if d.exist(filepath.Join(dir, marker)) {
			return true
		}
	}

	return false
}
