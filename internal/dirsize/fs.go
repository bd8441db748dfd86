package dirsize

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the set of filesystem primitives the aggregator relies on.
type FS interface {
	// ReadDir lists the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)
	// Lstat returns file info without following a final symlink.
	Lstat(name string) (fs.FileInfo, error)
	// EvalSymlinks returns the canonical path with all symlinks resolved.
	EvalSymlinks(path string) (string, error)
}

// OSFS implements FS on top of the host filesystem.
type OSFS struct{}

// ReadDir lists name sorted by filename.
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Lstat calls os.Lstat.
func (OSFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// EvalSymlinks resolves path to an absolute, symlink-free form.
func (OSFS) EvalSymlinks(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}

	return filepath.Abs(resolved)
}
