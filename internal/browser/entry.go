// Package browser holds the picker's navigation state independent of any
// rendering: directory listings, sort order, history, and the guards that keep
// background loads from racing each other.
package browser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/selectfile/internal/fsmeta"
)

// Entry describes one item of a directory listing.
type Entry struct {
	// Name is the base name.
	Name string
	// Path is the absolute path.
	Path string
	// IsDir is set for directories and symlinks to directories.
	IsDir bool
	// IsSymlink is set for symbolic links.
	IsSymlink bool
	// Broken is set for symbolic links whose target is missing.
	Broken bool
	// Hidden is set for dot-files.
	Hidden bool
	// Size is the size in bytes of files (directories report 0).
	Size int64
	// Mode is the mode of the entry itself (not its symlink target).
	Mode fs.FileMode
	// Modified is the modification time.
	Modified time.Time
	// Accessed is the access time.
	Accessed time.Time
	// Created is the creation time.
	Created time.Time
	// Venv is set for directories holding a Python virtual environment.
	Venv bool
}

// Ext returns the extension of the entry name, without the dot.
func (e Entry) Ext() string {
	ext := filepath.Ext(e.Name)
	if len(ext) > 1 {
		return ext[1:]
	}

	return ""
}

// Lister reads single directories into entries.
type Lister struct {
	// Venv marks virtual-environment directories; nil disables the check.
	Venv interface{ HasVenv(dir string) bool }
}

// List reads dir and returns its entries, omitting dot-files unless showHidden is set.
// Entries that vanish while being inspected are left out.
func (l Lister) List(dir string, showHidden bool) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		if !showHidden && fsmeta.IsHidden(item.Name()) {
			continue
		}

		entry, err := l.inspect(filepath.Join(dir, item.Name()))
		if err != nil {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (l Lister) inspect(path string) (Entry, error) {
	linfo, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:      filepath.Base(path),
		Path:      path,
		Mode:      linfo.Mode(),
		IsSymlink: linfo.Mode()&fs.ModeSymlink != 0,
		Hidden:    fsmeta.IsHidden(filepath.Base(path)),
	}

	info, follow := linfo, false

	if entry.IsSymlink {
		if target, err := os.Stat(path); err == nil {
			info, follow = target, true
		} else {
			entry.Broken = true
		}
	}

	times := fsmeta.TimesOf(path, info, follow)
	entry.Modified, entry.Accessed, entry.Created = times.Modified, times.Accessed, times.Created
	entry.IsDir = info.IsDir()

	if entry.IsDir {
		entry.Venv = l.Venv != nil && l.Venv.HasVenv(path)
	} else {
		entry.Size = info.Size()
	}

	return entry, nil
}
