package selection

import (
	"io/fs"
	"os"

	"github.com/idelchi/selectfile/internal/fsmeta"
)

// Sizer computes the recursive size of a directory.
type Sizer interface {
	Size(path string) int64
}

// VenvChecker reports whether a directory holds a virtual environment.
type VenvChecker interface {
	HasVenv(dir string) bool
}

// Builder assembles a Result for a chosen path.
type Builder struct {
	sizer Sizer
	venv  VenvChecker
	lstat func(string) (fs.FileInfo, error)
	stat  func(string) (fs.FileInfo, error)
}

// NewBuilder creates a Builder measuring folders with sizer and checking them with venv.
func NewBuilder(sizer Sizer, venv VenvChecker) *Builder {
	return &Builder{
		sizer: sizer,
		venv:  venv,
		lstat: os.Lstat,
		stat:  os.Stat,
	}
}

// Build gathers the metadata of path, which was chosen as a folder when isDir is set.
//
// When the path itself cannot be inspected the Result carries only the path and
// the error text. A symlink whose target is missing is reported from the link's
// own metadata with SymlinkBroken set.
func (b *Builder) Build(path string, isDir bool) Result {
	linfo, err := b.lstat(path)
	if err != nil {
		return Failed(path, isDir, err)
	}

	info := linfo
	isLink := linfo.Mode()&fs.ModeSymlink != 0
	broken := false

	if isLink {
		if target, err := b.stat(path); err == nil {
			info = target
		} else {
			broken = true
		}
	}

	times := fsmeta.TimesOf(path, info, isLink && !broken)
	readonly := fsmeta.IsReadonly(info.Mode())

	size := info.Size()
	if isDir && !broken {
		size = b.sizer.Size(path)
	}

	result := Result{
		LastModified:  &times.Modified,
		Created:       &times.Created,
		SizeBytes:     &size,
		Readonly:      &readonly,
		IsSymlink:     &isLink,
		SymlinkBroken: &broken,
	}

	if isDir {
		venv := !broken && b.venv.HasVenv(path)
		result.FolderPath = &path
		result.FolderHasVenv = &venv
	} else {
		result.FilePath = &path
	}

	return result
}
