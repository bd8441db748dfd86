package ui

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // Palette
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#9D8CFF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#8A8A8A"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	colorVenv    = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
)

//nolint:gochecknoglobals // Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	pathStyle     = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	dirStyle      = lipgloss.NewStyle().Foreground(colorPrimary)
	brokenStyle   = lipgloss.NewStyle().Foreground(colorError).Strikethrough(true)
	venvStyle     = lipgloss.NewStyle().Foreground(colorVenv)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	boxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)
