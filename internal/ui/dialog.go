package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/report"
)

//nolint:gochecknoglobals // Enumeration
var sortOrders = []browser.SortOrder{browser.Ascending, browser.Descending}

// sortDialog edits a copy of the sort settings; nothing applies until OK.
type sortDialog struct {
	mode  browser.SortMode
	order browser.SortOrder
	// group is 0 for the mode list and 1 for the order list.
	group int
}

func newSortDialog(mode browser.SortMode, order browser.SortOrder) *sortDialog {
	return &sortDialog{mode: mode, order: order}
}

func (d *sortDialog) switchGroup() {
	d.group = 1 - d.group
}

func (d *sortDialog) move(delta int) {
	if d.group == 0 {
		d.mode = step(browser.SortModes, d.mode, delta)

		return
	}

	d.order = step(sortOrders, d.order, delta)
}

func step[T comparable](options []T, current T, delta int) T {
	i := slices.Index(options, current) + delta

	return options[min(max(i, 0), len(options)-1)]
}

func (d *sortDialog) View() string {
	modes := make([]string, 0, len(browser.SortModes)+1)
	modes = append(modes, groupTitle("Sort by", d.group == 0))

	for _, mode := range browser.SortModes {
		modes = append(modes, radio(mode.Label(), mode == d.mode))
	}

	orders := make([]string, 0, len(sortOrders)+1)
	orders = append(orders, groupTitle("Order", d.group == 1))

	for _, order := range sortOrders {
		orders = append(orders, radio(order.Label(), order == d.order))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(modes, "\n"),
		"    ",
		strings.Join(orders, "\n"),
	)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Sort Options"),
		"",
		body,
		"",
		mutedStyle.Render("tab: switch group  ↑/↓: choose  enter: OK  esc: Cancel"),
	))
}

func groupTitle(title string, focused bool) string {
	if focused {
		return cursorStyle.Render(title)
	}

	return pathStyle.Render(title)
}

func radio(label string, on bool) string {
	if on {
		return "(•) " + label
	}

	return "( ) " + label
}

// infoPopup shows the largest files below a folder.
type infoPopup struct {
	dir     string
	loading bool
	stats   *report.Stats
	err     error
	// stop cancels the report walk.
	stop context.CancelFunc
}

func (p *infoPopup) View(spin string) string {
	lines := []string{titleStyle.Render("Folder info"), pathStyle.Render(p.dir), ""}

	switch {
	case p.loading:
		lines = append(lines, spin+" Scanning...")
	case p.err != nil:
		lines = append(lines, errorStyle.Render(p.err.Error()))
	default:
		s := p.stats
		lines = append(lines,
			fmt.Sprintf("%d files, %s", s.Count, humanize.IBytes(uint64(max(s.TotalBytes, 0)))),
			"",
			"Largest files:",
		)

		for i, item := range s.Top {
			lines = append(lines, fmt.Sprintf("  %2d) %-40s %10s (%.1f%%)",
				i+1, item.Path, humanize.IBytes(uint64(max(item.Size, 0))), s.Share(item.Size)))
		}

		if len(s.Top) == 0 {
			lines = append(lines, mutedStyle.Render("  none"))
		}
	}

	lines = append(lines, "", mutedStyle.Render("press any key to close"))

	return boxStyle.Render(strings.Join(lines, "\n"))
}
