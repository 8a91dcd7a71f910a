package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#6200EE")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Align(lipgloss.Center)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E53935"))
)
