package integration

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rendered, err := render("/usr/bin/zsh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "#!/usr/bin/zsh\n"))
	assert.NotContains(t, rendered, "{{")
	assert.Contains(t, rendered, "bindkey '^T' selectfile-file-widget")
}

func TestRender_UsesZshOnPath(t *testing.T) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		t.Skip("zsh is not installed")
	}

	rendered, err := Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "#!"+filepath.ToSlash(zsh)+"\n"))
	assert.Contains(t, rendered, "selectfile-file-widget")
}
