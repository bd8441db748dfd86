package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/fsmeta"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	maxNameWidth = 48
	sizeWidth    = 10
)

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.opts.Title
	if title == "" {
		title = "Select File"
	}

	sections := []string{
		titleStyle.Render(title),
		subtitleStyle.Render(Subtitle(m.opts.SelectFiles, m.opts.SelectDirs)),
		pathStyle.Render(m.pathLine()),
		m.help.ShortHelpView(m.keys.ShortHelp()),
		"",
		m.listView(),
		"",
		m.statusLine(),
	}

	// Popups take over the screen until dismissed.
	switch {
	case m.dialog != nil:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	case m.info != nil:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.info.View(m.spinner.View()))
	}

	return strings.Join(sections, "\n")
}

func (m Model) pathLine() string {
	if p := m.highlightedPath(); p != "" {
		return p
	}

	return m.dir
}

func (m Model) listView() string {
	rows := m.rows()
	end := min(m.offset+m.listHeight(), len(rows))
	nameWidth := m.nameWidth()

	lines := make([]string, 0, end-m.offset)

	for i := m.offset; i < end; i++ {
		line := m.label(rows[i], nameWidth)

		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) nameWidth() int {
	width := len("..")

	for _, e := range m.entries {
		width = max(width, lipgloss.Width(e.Name+fsmeta.Indicator(e.Mode)))
	}

	return min(width, maxNameWidth)
}

func (m Model) label(r row, nameWidth int) string {
	switch r.kind {
	case rowLoading:
		return mutedStyle.Render("Loading...")
	case rowEmpty:
		return mutedStyle.Render("<empty>")
	case rowParent:
		return dirStyle.Render(pad("..", nameWidth)) + "  " + mutedStyle.Render("(Go up)")
	case rowEntry:
	}

	e := r.entry
	name := pad(truncate(e.Name+fsmeta.Indicator(e.Mode), nameWidth), nameWidth)

	switch {
	case e.Broken:
		name = brokenStyle.Render(name)
	case e.IsDir:
		name = dirStyle.Render(name)
	}

	size := fmt.Sprintf("%*s", sizeWidth, m.sizeText(e))
	line := fmt.Sprintf("%s  %s  %s", name, size, e.Modified.Format(timeLayout))

	if e.Venv {
		line += "  " + venvStyle.Render("venv")
	}

	return line
}

func (m Model) sizeText(e browser.Entry) string {
	if !e.IsDir {
		return humanize.IBytes(uint64(max(e.Size, 0)))
	}

	if size, ok := m.sizes[e.Path]; ok {
		return humanize.IBytes(uint64(max(size, 0)))
	}

	return "-"
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.status != "":
		return mutedStyle.Render(m.status)
	}

	r, ok := m.current()
	if !ok || r.kind != rowEntry {
		return mutedStyle.Render(m.summary())
	}

	e := r.entry
	if !e.IsDir {
		return mutedStyle.Render(fmt.Sprintf("%s  %s", e.Name, humanize.IBytes(uint64(max(e.Size, 0)))))
	}

	if size, ok := m.sizes[e.Path]; ok {
		return mutedStyle.Render(fmt.Sprintf("%s  %s total", e.Name, humanize.IBytes(uint64(max(size, 0)))))
	}

	return m.spinner.View() + mutedStyle.Render(" Calculating size of "+e.Name)
}

func (m Model) summary() string {
	hidden := "hidden off"
	if m.showHidden {
		hidden = "hidden on"
	}

	return fmt.Sprintf("%d entries  sort: %s %s  %s",
		len(m.entries), m.sortMode.Label(), m.sortOrder.Label(), hidden)
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}

	return string(runes) + "…"
}
