package selection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasVenv(t *testing.T) {
	root := t.TempDir()

	self := filepath.Join(root, "env-itself")
	require.NoError(t, os.MkdirAll(self, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(self, "pyvenv.cfg"), []byte("home = /usr/bin"), 0o644))

	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".venv", "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, ".venv", "bin", "activate"), nil, 0o644))

	plain := filepath.Join(root, "plain")
	require.NoError(t, os.MkdirAll(filepath.Join(plain, "venv"), 0o755))

	d := NewVenvDetector(0)

	assert.True(t, d.HasVenv(self))
	assert.True(t, d.HasVenv(project))
	assert.False(t, d.HasVenv(plain), "an empty venv directory is not an environment")
}

func TestHasVenv_Memoized(t *testing.T) {
	calls := 0
	d := NewVenvDetector(2)
	d.exist = func(string) bool {
		calls++

		return false
	}

	assert.False(t, d.HasVenv("/a"))
	first := calls
	assert.False(t, d.HasVenv("/a"))
	assert.Equal(t, first, calls)

	d.HasVenv("/b")
	d.HasVenv("/c")
	assert.Equal(t, 2, d.Len())
}
