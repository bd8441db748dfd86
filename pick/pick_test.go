package pick

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_ValidatesBeforeOpeningTheTerminal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"nothing selectable", Options{Dir: t.TempDir()}, ErrNothingSelectable},
		{"missing directory", Options{Dir: filepath.Join(t.TempDir(), "missing"), Files: true}, ErrNotDirectory},
		{"file as directory", Options{Dir: file, Files: true}, ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Select(context.Background(), tt.opts)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, result.IsCancelled())
		})
	}
}

func TestSelectPath_NotDirectory(t *testing.T) {
	path, err := SelectPath(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrNotDirectory)
	assert.Empty(t, path)
}
