package tui

import (
	"strings"

	"animlists/anim"
)

const appTitle = "Animation Lists"

// chipRowView renders the chip grid with the current selection
func (m Model) chipRowView() string {
	modes := anim.Modes()
	blocks := make([]string, len(modes))
	for i, mode := range modes {
		blocks[i] = renderChip(i == m.selected, mode.String(), m.chips.ItemWidth)
	}
	return m.chips.Compose(blocks)
}

func (m Model) footerView() string {
	var b strings.Builder
	if m.statusMessage != "" {
		b.WriteString(errorStyle.Render("⚠ " + m.statusMessage))
		b.WriteString("\n")
	} else if !anim.Mode(m.selected).Known() {
		b.WriteString(statusStyle.Render("no animation selected, new cards use the fallback fade"))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	padding := strings.Repeat("\n", chipRowPadding)

	var b strings.Builder
	b.WriteString(headerStyle.Width(m.width).Render(appTitle))
	b.WriteString("\n")
	b.WriteString(padding)
	b.WriteString(m.chipRowView())
	b.WriteString("\n")
	b.WriteString(padding)
	if len(m.items) == 0 {
		b.WriteString(statusStyle.Render("No items"))
		b.WriteString(strings.Repeat("\n", m.viewport.Height))
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}
	b.WriteString(m.footerView())

	return b.String()
}
