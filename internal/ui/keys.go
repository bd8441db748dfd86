package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Enter     key.Binding
	Open      key.Binding
	Parent    key.Binding
	Home      key.Binding
	Root      key.Binding
	SelectDir key.Binding
	Sort      key.Binding
	Hidden    key.Binding
	Refresh   key.Binding
	Back      key.Binding
	Forward   key.Binding
	Info      key.Binding
	Quit      key.Binding
}

func newKeyMap(selectDirs bool) keyMap {
	keys := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/select"),
		),
		Open: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("left", "backspace", "u", "p"),
			key.WithHelp("u", "parent"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Root: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "root"),
		),
		SelectDir: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "select dir"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "hidden"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("f5", "ctrl+r"),
			key.WithHelp("f5", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "forward"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}

	keys.SelectDir.SetEnabled(selectDirs)

	return keys
}

// ShortHelp is the navigation bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Parent, k.Home, k.Root, k.Back, k.Forward,
		k.Sort, k.Hidden, k.Refresh, k.Info, k.SelectDir, k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Enter, k.Open, k.Parent, k.Home, k.Root, k.SelectDir},
		{k.Sort, k.Hidden, k.Refresh, k.Back, k.Forward, k.Info, k.Quit},
	}
}

// dialogKeys drive the sort dialog.
type dialogKeys struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	OK     key.Binding
	Cancel key.Binding
}

func newDialogKeys() dialogKeys {
	return dialogKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right")),
		OK:     key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q")),
	}
}
