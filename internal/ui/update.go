package ui

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/report"
	"github.com/idelchi/selectfile/internal/selection"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case listingMsg:
		return m.applyListing(msg)

	case sizeMsg:
		delete(m.pending, msg.path)
		m.sizes[msg.path] = msg.size

		return m, nil

	case infoMsg:
		if m.info != nil && m.info == msg.popup {
			m.info.loading = false
			m.info.stats, m.info.err = msg.stats, msg.err
		}

		return m, nil

	case resultMsg:
		m.result = msg.result
		m.done, m.quitting = true, true

		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) applyListing(msg listingMsg) (tea.Model, tea.Cmd) {
	m.guard.End()
	m.loading = false

	if msg.err != nil {
		m.log.Debugf("listing %s failed: %v", msg.dir, msg.err)
		m.err = msg.err

		// Put back what the failed history move took.
		switch msg.kind {
		case navBack:
			m.history.Forward(msg.dir)
		case navForward:
			m.history.Back(msg.dir)
		case navVisit, navRefresh:
		}

		m.scrollToCursor()

		return m, m.measureCurrent()
	}

	if msg.kind == navVisit && msg.dir != m.dir {
		m.history.Visit(m.dir)
	}

	m.dir = msg.dir
	m.entries = msg.entries
	m.showHidden = msg.hidden
	m.err = nil
	m.status = ""

	browser.Sort(m.entries, m.sortMode, m.sortOrder)

	m.cursor, m.offset = 0, 0
	m.focus(msg.focus)

	return m, m.measureCurrent()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.cancel()
	}

	if m.done {
		return m, nil
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.info != nil {
		m.closeInfo()

		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.cancel()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.listHeight())
	case key.Matches(msg, m.keys.Top):
		m.move(-len(m.rows()))
	case key.Matches(msg, m.keys.Bottom):
		m.move(len(m.rows()))
	case key.Matches(msg, m.keys.Enter):
		return m.enter()
	case key.Matches(msg, m.keys.Open):
		if r, ok := m.current(); ok && r.kind == rowEntry && r.entry.IsDir {
			return m.navigate(r.entry.Path, navVisit, "")
		}
	case key.Matches(msg, m.keys.Parent):
		return m.parent()
	case key.Matches(msg, m.keys.Home):
		return m.navigate(homeDir(), navVisit, "")
	case key.Matches(msg, m.keys.Root):
		return m.navigate(rootDir(m.dir), navVisit, "")
	case key.Matches(msg, m.keys.SelectDir):
		return m.selectDir()
	case key.Matches(msg, m.keys.Sort):
		m.dialog = newSortDialog(m.sortMode, m.sortOrder)
	case key.Matches(msg, m.keys.Hidden):
		if m.busy() {
			return m, nil
		}

		return m.request(m.dir, navRefresh, m.highlightedPath(), !m.showHidden)
	case key.Matches(msg, m.keys.Refresh):
		return m.navigate(m.dir, navRefresh, m.highlightedPath())
	case key.Matches(msg, m.keys.Back):
		if !m.history.CanBack() || m.busy() {
			return m, nil
		}

		target, _ := m.history.Back(m.dir)

		return m.navigate(target, navBack, "")
	case key.Matches(msg, m.keys.Forward):
		if !m.history.CanForward() || m.busy() {
			return m, nil
		}

		target, _ := m.history.Forward(m.dir)

		return m.navigate(target, navForward, "")
	case key.Matches(msg, m.keys.Info):
		dir := m.dir
		if r, ok := m.current(); ok && r.kind == rowEntry && r.entry.IsDir {
			dir = r.entry.Path
		}

		ctx, stop := context.WithCancel(m.ctx)
		m.info = &infoPopup{dir: dir, loading: true, stop: stop}

		return m, m.inspect(ctx, m.info)
	}

	return m, m.measureCurrent()
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.dialogKeys.Cancel):
		m.dialog = nil
	case key.Matches(msg, m.dialogKeys.OK):
		focus := m.highlightedPath()
		m.sortMode, m.sortOrder = m.dialog.mode, m.dialog.order
		m.dialog = nil

		browser.Sort(m.entries, m.sortMode, m.sortOrder)
		m.focus(focus)
	case key.Matches(msg, m.dialogKeys.Switch):
		m.dialog.switchGroup()
	case key.Matches(msg, m.dialogKeys.Up):
		m.dialog.move(-1)
	case key.Matches(msg, m.dialogKeys.Down):
		m.dialog.move(1)
	}

	return m, nil
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.closeInfo()
	m.result = selection.Cancelled()
	m.done, m.quitting = true, true

	return m, tea.Quit
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}

	switch r.kind {
	case rowParent:
		return m.parent()
	case rowEntry:
		if r.entry.IsDir {
			if m.opts.SelectDirs && !m.opts.SelectFiles {
				return m.finish(r.entry.Path, true)
			}

			return m.navigate(r.entry.Path, navVisit, "")
		}

		if !m.opts.SelectFiles {
			m.status = "Only folders can be selected"

			return m, nil
		}

		return m.finish(r.entry.Path, false)
	case rowLoading, rowEmpty:
	}

	return m, nil
}

func (m Model) selectDir() (tea.Model, tea.Cmd) {
	if !m.opts.SelectDirs || m.loading {
		return m, nil
	}

	if r, ok := m.current(); ok && r.kind == rowEntry && r.entry.IsDir {
		return m.finish(r.entry.Path, true)
	}

	return m.finish(m.dir, true)
}

func (m Model) finish(path string, isDir bool) (tea.Model, tea.Cmd) {
	m.closeInfo()
	m.done = true
	m.status = "Collecting metadata for " + path

	return m, m.choose(path, isDir)
}

func (m Model) parent() (tea.Model, tea.Cmd) {
	if isRoot(m.dir) {
		return m, nil
	}

	return m.navigate(filepath.Dir(m.dir), navVisit, m.dir)
}

// navigate starts loading target unless another directory change is in flight,
// in which case the request is dropped.
func (m Model) navigate(target string, kind navKind, focus string) (Model, tea.Cmd) {
	return m.request(target, kind, focus, m.showHidden)
}

// request is navigate with an explicit hidden-files setting. The setting only
// takes effect once the listing succeeds.
func (m Model) request(target string, kind navKind, focus string, hidden bool) (Model, tea.Cmd) {
	if !m.guard.TryBegin(target) {
		m.log.Debugf("dropping change to %s: another is in flight", target)

		return m, nil
	}

	m.loading = true
	m.err = nil
	m.status = ""

	return m, m.load(target, kind, focus, hidden)
}

func (m Model) busy() bool {
	_, busy := m.guard.Pending()

	return busy
}

func (m *Model) move(delta int) {
	n := len(m.rows())
	m.cursor = min(max(m.cursor+delta, 0), max(n-1, 0))
	m.scrollToCursor()
}

// focus moves the cursor to the entry at path, if listed.
func (m *Model) focus(path string) {
	if path == "" {
		m.scrollToCursor()

		return
	}

	for i, r := range m.rows() {
		if r.kind == rowEntry && r.entry.Path == path {
			m.cursor = i

			break
		}
	}

	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	height := m.listHeight()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}

	m.offset = max(m.offset, 0)
}

func (m Model) highlightedPath() string {
	if r, ok := m.current(); ok && r.kind == rowEntry {
		return r.entry.Path
	}

	return ""
}

// measureCurrent starts sizing the highlighted folder unless known or underway.
func (m Model) measureCurrent() tea.Cmd {
	r, ok := m.current()
	if !ok || r.kind != rowEntry || !r.entry.IsDir || m.deps.Sizer == nil {
		return nil
	}

	path := r.entry.Path
	if _, known := m.sizes[path]; known || m.pending[path] {
		return nil
	}

	m.pending[path] = true

	return m.measure(path)
}

// closeInfo dismisses the info popup and stops its report walk.
func (m *Model) closeInfo() {
	if m.info == nil {
		return
	}

	m.info.stop()
	m.info = nil
}

func (m Model) inspect(ctx context.Context, popup *infoPopup) tea.Cmd {
	opts := report.Options{
		Path:     popup.dir,
		TopN:     m.opts.ReportTopN,
		Excludes: m.opts.ReportExcludes,
		Logger:   m.log,
	}

	return func() tea.Msg {
		stats, err := report.Run(ctx, opts, nil)

		return infoMsg{popup: popup, stats: stats, err: err}
	}
}
