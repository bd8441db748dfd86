package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/selectfile/internal/selection"
)

// ErrNotTerminal is returned when stdin or stderr is not an interactive terminal.
var ErrNotTerminal = errors.New("an interactive terminal is required on stdin and stderr")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run shows the picker on stderr, keeping stdout free for the caller, and
// blocks until the user chooses an entry or cancels.
func Run(ctx context.Context, opts Options, deps Deps) (selection.Result, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return selection.Cancelled(), ErrNotTerminal
	}

	program := tea.NewProgram(
		New(ctx, opts, deps),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return selection.Cancelled(), fmt.Errorf("running picker: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return selection.Cancelled(), nil
	}

	return model.Result(), nil
}
