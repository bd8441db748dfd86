// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"fmt"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ZshWidget is the zsh integration script binding the picker to Ctrl-T and Alt-C.
//
//go:embed zsh-selectfile.sh
var ZshWidget string

// Render fills the interpreter path of the zsh script with the zsh found on PATH.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", fmt.Errorf("locating zsh: %w", err)
	}

	return render(filepath.ToSlash(zsh))
}

func render(zsh string) (string, error) {
	tmpl, err := template.New("zsh-selectfile").Parse(ZshWidget)
	if err != nil {
		return "", fmt.Errorf("parsing zsh script: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"ZSH": zsh}); err != nil {
		return "", fmt.Errorf("rendering zsh script: %w", err)
	}

	return buf.String(), nil
}
