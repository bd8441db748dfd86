package fsmeta

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicator(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want string
	}{
		{"directory", fs.ModeDir | 0o755, "/"},
		{"symlink", fs.ModeSymlink | 0o777, "@"},
		{"fifo", fs.ModeNamedPipe | 0o644, "|"},
		{"socket", fs.ModeSocket | 0o755, "="},
		{"executable", 0o755, "*"},
		{"plain file", 0o644, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Indicator(tt.mode))
		})
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("git"))
	assert.False(t, IsHidden(".."))
	assert.False(t, IsHidden("."))
}

func TestIsReadonly(t *testing.T) {
	assert.True(t, IsReadonly(0o444))
	assert.False(t, IsReadonly(0o644))
}

func TestTimesOf_ModifiedMatchesFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	stamp := time.Date(2020, 5, 17, 10, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	info, err := os.Stat(path)
	require.NoError(t, err)

	times := TimesOf(path, info, true)

	assert.True(t, times.Modified.Equal(stamp))
	assert.False(t, times.Created.IsZero())
	assert.False(t, times.Accessed.IsZero())
}
