package selection

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/selectfile/internal/dirsize"
)

type fixedSizer int64

func (f fixedSizer) Size(string) int64 { return int64(f) }

type venvSet map[string]bool

func (v venvSet) HasVenv(dir string) bool { return v[dir] }

func TestBuild_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o444))

	r := NewBuilder(fixedSizer(0), venvSet{}).Build(path, false)

	require.False(t, r.HasError())
	require.NotNil(t, r.FilePath)
	assert.Equal(t, path, *r.FilePath)
	assert.Nil(t, r.FolderPath)
	assert.Nil(t, r.FolderHasVenv)
	assert.Equal(t, int64(5), *r.SizeBytes)
	assert.True(t, *r.Readonly)
	assert.False(t, *r.IsSymlink)
	assert.False(t, *r.SymlinkBroken)
	assert.NotNil(t, r.LastModified)
	assert.NotNil(t, r.Created)
}

func TestBuild_FolderUsesAggregator(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), make([]byte, 30), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b"), make([]byte, 12), 0o644))

	r := NewBuilder(dirsize.New(dirsize.Options{}), venvSet{root: true}).Build(root, true)

	require.False(t, r.HasError())
	require.NotNil(t, r.FolderPath)
	assert.Nil(t, r.FilePath)
	assert.Equal(t, int64(42), *r.SizeBytes)
	assert.True(t, *r.FolderHasVenv)
	assert.False(t, *r.Readonly)
}

func TestBuild_Symlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("target"), 0o644))

	live := filepath.Join(root, "live")
	if err := os.Symlink(target, live); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	broken := filepath.Join(root, "broken")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), broken))

	b := NewBuilder(fixedSizer(0), venvSet{})

	r := b.Build(live, false)
	require.False(t, r.HasError())
	assert.True(t, *r.IsSymlink)
	assert.False(t, *r.SymlinkBroken)
	assert.Equal(t, int64(6), *r.SizeBytes, "live links report the target size")

	r = b.Build(broken, false)
	require.False(t, r.HasError())
	assert.True(t, *r.IsSymlink)
	assert.True(t, *r.SymlinkBroken)
}

func TestBuild_StatFailure(t *testing.T) {
	b := NewBuilder(fixedSizer(0), venvSet{})
	b.lstat = func(string) (fs.FileInfo, error) {
		return nil, &fs.PathError{Op: "lstat", Path: "/root/x", Err: fs.ErrPermission}
	}

	r := b.Build("/root/x", false)

	require.True(t, r.HasError())
	assert.Contains(t, *r.ErrorMessage, "permission denied")
	assert.Equal(t, "/root/x", *r.FilePath)
	assert.Nil(t, r.LastModified)
	assert.Nil(t, r.SizeBytes)
	assert.Nil(t, r.Readonly)
	assert.Nil(t, r.IsSymlink)
}

func TestBuild_VanishedPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	r := NewBuilder(fixedSizer(0), venvSet{}).Build(missing, true)

	require.True(t, r.HasError())
	assert.Equal(t, missing, *r.FolderPath)
	assert.Nil(t, r.FolderHasVenv)
}
