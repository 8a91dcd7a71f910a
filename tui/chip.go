package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// chip is a grid child for one animation name
type chip struct {
	text string
}

func (c chip) Measure(width int) int {
	return lipgloss.Height(renderChip(false, c.text, width))
}

// renderChip draws a pill-shaped label. Its look depends only on selected
// and the current light/dark theme.
func renderChip(selected bool, text string, width int) string {
	fill, content, border := chipColors(selected, currentTheme)

	// 1 cell of margin on each side, then the border
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(fill).
		Foreground(content).
		Width(inner).
		Align(lipgloss.Center).
		Margin(0, 1)

	return style.Render(truncate(text, inner))
}

// chipColors returns the fill, text and border colours of a chip
func chipColors(selected bool, t Theme) (fill, content, border lipgloss.Color) {
	if selected {
		alpha := 0.7
		if t.Dark {
			alpha = 1
		}
		return blend(t.Background, t.Accent, alpha), t.Surface, t.Accent
	}

	alpha := 0.04
	if t.Dark {
		alpha = 0.07
	}
	border = t.AccentLight
	if t.Dark {
		border = t.Accent
	}
	return blend(t.Background, t.OnSurface, alpha), t.OnSurface, border
}
