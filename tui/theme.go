package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	Name        string
	Dark        bool
	Background  lipgloss.Color
	Surface     lipgloss.Color
	OnSurface   lipgloss.Color
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	AccentLight lipgloss.Color
	Muted       lipgloss.Color
	Subtle      lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Light",
		Dark:        false,
		Background:  lipgloss.Color("#FFFFFF"),
		Surface:     lipgloss.Color("#FFFFFF"),
		OnSurface:   lipgloss.Color("#000000"),
		Primary:     lipgloss.Color("#6200EE"),
		Accent:      lipgloss.Color("#6200EE"),
		AccentLight: lipgloss.Color("#BB86FC"),
		Muted:       lipgloss.Color("#888888"),
		Subtle:      lipgloss.Color("#CCCCCC"),
	},
	{
		Name:        "Dark",
		Dark:        true,
		Background:  lipgloss.Color("#121212"),
		Surface:     lipgloss.Color("#121212"),
		OnSurface:   lipgloss.Color("#FFFFFF"),
		Primary:     lipgloss.Color("#BB86FC"),
		Accent:      lipgloss.Color("#6200EE"),
		AccentLight: lipgloss.Color("#BB86FC"),
		Muted:       lipgloss.Color("#888888"),
		Subtle:      lipgloss.Color("#D3D3D3"),
	},
}

// currentTheme is the theme last applied
var currentTheme = themes[0]

// themeIndexFor picks the starting theme from the -theme flag value
func themeIndexFor(name string) int {
	switch name {
	case "light":
		return 0
	case "dark":
		return 1
	}
	if lipgloss.HasDarkBackground() {
		return 1
	}
	return 0
}

func (t Theme) applyStyles() {
	currentTheme = t

	headerStyle = lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Align(lipgloss.Center)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E53935"))
}

// blend mixes fg over bg at the given alpha. Colours that don't parse as
// hex are returned unchanged.
func blend(bg, fg lipgloss.Color, alpha float64) lipgloss.Color {
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	return lipgloss.Color(b.BlendRgb(f, alpha).Clamped().Hex())
}
