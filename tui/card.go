package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"animlists/sample"
)

const (
	cardHeight = 4 // 2 content lines + border
	itemGap    = 1
	itemHeight = cardHeight + itemGap

	avatarWidth = 3
	menuGlyph   = "⋮"
)

// renderCard draws one list card at the given total width. Every colour is
// faded toward the background by opacity.
func renderCard(item sample.Item, width int, opacity float64) []string {
	t := currentTheme
	fade := func(c lipgloss.Color) lipgloss.Color {
		return blend(t.Background, c, opacity)
	}

	// border (2) + padding (2)
	inner := width - 4
	if inner < avatarWidth+4 {
		inner = avatarWidth + 4
	}
	textWidth := inner - avatarWidth - 1 - 2

	avatar := lipgloss.NewStyle().
		Background(fade(item.Image.Color())).
		Foreground(fade(lipgloss.Color("#FFFFFF"))).
		Bold(true).
		Render(" " + item.Image.Glyph() + " ")

	title := lipgloss.NewStyle().
		Foreground(fade(t.OnSurface)).
		Bold(true).
		Render(pad(truncate(item.Title, textWidth), textWidth))

	desc := lipgloss.NewStyle().
		Foreground(fade(t.Muted)).
		Render(pad(truncate(item.Description, textWidth), textWidth))

	menu := lipgloss.NewStyle().
		Foreground(fade(t.Subtle)).
		Render(menuGlyph)

	line1 := avatar + " " + title + " " + menu
	line2 := strings.Repeat(" ", avatarWidth) + " " + desc + "  "

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(t.Subtle)).
		Padding(0, 1).
		Width(inner + 2).
		Render(line1 + "\n" + line2)

	return strings.Split(card, "\n")
}

// truncate cuts s to width cells, ending with an ellipsis when shortened
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// pad right-pads s with spaces to width cells
func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
