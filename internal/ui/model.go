// Package ui is the interactive picker: a bubbletea program that browses one
// directory at a time and returns a selection.Result for the chosen entry.
package ui

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/report"
	"github.com/idelchi/selectfile/internal/selection"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	// chromeLines is the number of rows taken by everything but the list.
	chromeLines = 8
)

// Logger receives debug messages from the picker.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Options configures a picker session.
type Options struct {
	// Dir is the directory the picker opens in. Defaults to the working directory.
	Dir string
	// Title is shown above the subtitle.
	Title string
	// SelectFiles allows choosing files.
	SelectFiles bool
	// SelectDirs allows choosing directories.
	SelectDirs bool
	// ShowHidden lists dot-files from the start.
	ShowHidden bool
	// SortMode is the initial sort key.
	SortMode browser.SortMode
	// SortOrder is the initial sort direction.
	SortOrder browser.SortOrder
	// ReportTopN is the number of files listed by the info popup.
	ReportTopN int
	// ReportExcludes are exclusion patterns for the info popup.
	ReportExcludes []string
}

// Deps are the services the picker works through.
type Deps struct {
	Loader  *browser.Loader
	Sizer   *browser.Sizer
	Builder *selection.Builder
	Logger  Logger
}

type rowKind int

const (
	rowEntry rowKind = iota
	rowParent
	rowLoading
	rowEmpty
)

type row struct {
	kind  rowKind
	entry browser.Entry
}

// navKind records how a directory change was requested, which decides what
// happens to the history once the listing arrives.
type navKind int

const (
	navVisit navKind = iota
	navBack
	navForward
	navRefresh
)

type listingMsg struct {
	dir     string
	kind    navKind
	focus   string
	hidden  bool
	entries []browser.Entry
	err     error
}

type sizeMsg struct {
	path string
	size int64
}

type infoMsg struct {
	popup *infoPopup
	stats *report.Stats
	err   error
}

type resultMsg struct {
	result selection.Result
}

// Model is the picker state.
type Model struct {
	ctx  context.Context
	opts Options
	deps Deps
	log  Logger

	keys       keyMap
	dialogKeys dialogKeys
	help       help.Model
	spinner    spinner.Model

	dir        string
	entries    []browser.Entry
	loading    bool
	cursor     int
	offset     int
	showHidden bool
	sortMode   browser.SortMode
	sortOrder  browser.SortOrder

	history *browser.History
	guard   *browser.Guard

	sizes   map[string]int64
	pending map[string]bool

	dialog *sortDialog
	info   *infoPopup
	status string
	err    error

	width  int
	height int

	result   selection.Result
	done     bool
	quitting bool
}

// New creates the picker model. Options.Dir is made absolute.
func New(ctx context.Context, opts Options, deps Deps) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	log := deps.Logger
	if log == nil {
		log = nopLogger{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	return Model{
		ctx:        ctx,
		opts:       opts,
		deps:       deps,
		log:        log,
		keys:       newKeyMap(opts.SelectDirs),
		dialogKeys: newDialogKeys(),
		help:       help.New(),
		spinner:    sp,
		dir:        dir,
		loading:    true,
		showHidden: opts.ShowHidden,
		sortMode:   opts.SortMode,
		sortOrder:  opts.SortOrder,
		history:    &browser.History{},
		guard:      &browser.Guard{},
		sizes:      map[string]int64{},
		pending:    map[string]bool{},
		width:      defaultWidth,
		height:     defaultHeight,
		result:     selection.Cancelled(),
	}
}

// Init starts the first listing.
func (m Model) Init() tea.Cmd {
	m.guard.TryBegin(m.dir)

	return tea.Batch(m.spinner.Tick, m.load(m.dir, navRefresh, "", m.showHidden))
}

// Result is the outcome of the session; the cancellation shape until something is chosen.
func (m Model) Result() selection.Result {
	return m.result
}

// Subtitle returns the key hint line for the selection flags.
func Subtitle(selectFiles, selectDirs bool) string {
	switch {
	case selectFiles && selectDirs:
		return "Navigate with arrows, Enter to select files or folders, D to select dir, Q to cancel"
	case selectDirs:
		return "Navigate with arrows, Enter to select folders, D to select dir, Q to cancel"
	default:
		return "Navigate with arrows, Enter to select files, Q to cancel"
	}
}

func (m Model) load(dir string, kind navKind, focus string, hidden bool) tea.Cmd {
	ctx, loader := m.ctx, m.deps.Loader

	return func() tea.Msg {
		entries, err := loader.Load(ctx, dir, hidden)

		return listingMsg{dir: dir, kind: kind, focus: focus, hidden: hidden, entries: entries, err: err}
	}
}

func (m Model) measure(path string) tea.Cmd {
	sizer := m.deps.Sizer

	return func() tea.Msg {
		return sizeMsg{path: path, size: sizer.Size(path)}
	}
}

func (m Model) choose(path string, isDir bool) tea.Cmd {
	builder := m.deps.Builder

	return func() tea.Msg {
		return resultMsg{result: builder.Build(path, isDir)}
	}
}

// rows returns what the list shows.
func (m Model) rows() []row {
	if m.loading {
		return []row{{kind: rowLoading}}
	}

	rows := make([]row, 0, len(m.entries)+1)

	if !isRoot(m.dir) {
		rows = append(rows, row{kind: rowParent})
	}

	if len(m.entries) == 0 {
		return append(rows, row{kind: rowEmpty})
	}

	for _, e := range m.entries {
		rows = append(rows, row{kind: rowEntry, entry: e})
	}

	return rows
}

// current returns the highlighted row.
func (m Model) current() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}

	return rows[m.cursor], true
}

func (m Model) listHeight() int {
	return max(m.height-chromeLines, 1)
}

func isRoot(dir string) bool {
	return filepath.Dir(dir) == dir
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return string(filepath.Separator)
	}

	return home
}

func rootDir(dir string) string {
	if vol := filepath.VolumeName(dir); vol != "" {
		return vol + string(filepath.Separator)
	}

	return string(filepath.Separator)
}
