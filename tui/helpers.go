package tui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"animlists/anim"
	"animlists/grid"
)

// selectMode sets the selected animation. Cards already on screen keep the
// animation they were mounted with.
func (m *Model) selectMode(idx int) {
	if idx < 0 || idx >= len(anim.Modes()) {
		return
	}
	m.selected = idx
}

func (m *Model) selectPrev() {
	if !anim.Mode(m.selected).Known() || m.selected == 0 {
		m.selected = len(anim.Modes()) - 1
		return
	}
	m.selected--
}

func (m *Model) selectNext() {
	if !anim.Mode(m.selected).Known() {
		m.selected = 0
		return
	}
	m.selected = (m.selected + 1) % len(anim.Modes())
}

// scrollBy moves the list by n lines; the viewport clamps the offset
func (m *Model) scrollBy(n int) {
	m.viewport.SetYOffset(m.viewport.YOffset + n)
}

// chipTop is the screen row where the chip grid starts
func chipTop() int {
	return headerHeight + chipRowPadding
}

// chipAt maps a screen position to a chip index, or -1
func (m *Model) chipAt(x, y int) int {
	return m.chips.Hit(x, y-chipTop())
}

// resize lays out the chip grid and sizes the list to what's left
func (m *Model) resize() {
	modes := anim.Modes()
	children := make([]grid.Child, len(modes))
	for i, mode := range modes {
		children[i] = chip{text: mode.String()}
	}

	chips, err := grid.Layout(children, chipColumns, grid.Constraints{
		MaxWidth:  m.width,
		MaxHeight: m.height,
	})
	if err != nil {
		log.Printf("Chip layout failed: %v", err)
	}
	m.chips = chips

	listHeight := m.height - headerHeight - 2*chipRowPadding - m.chips.Height - lipgloss.Height(m.footerView())
	if listHeight < 1 {
		listHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = listHeight
}

// refresh mounts and unmounts cards for the current scroll position and
// re-renders the list content
func (m *Model) refresh() {
	// content first so the viewport can clamp its offset
	m.viewport.SetContent(m.listContent())
	m.syncMounts()
	m.viewport.SetContent(m.listContent())
}

// visibleRange returns the first and last item index with at least one
// row on screen; last < first when nothing is visible
func (m *Model) visibleRange() (int, int) {
	if len(m.items) == 0 || m.viewport.Height <= 0 {
		return 0, -1
	}
	first := m.viewport.YOffset / itemHeight
	last := (m.viewport.YOffset + m.viewport.Height - 1) / itemHeight
	if last >= len(m.items) {
		last = len(m.items) - 1
	}
	return first, last
}

// syncMounts starts an animation for every card that just came on screen
// using the selected mode, and drops the animations of cards that left
func (m *Model) syncMounts() {
	first, last := m.visibleRange()
	for i := range m.mounted {
		if i < first || i > last {
			delete(m.mounted, i)
		}
	}
	for i := first; i <= last; i++ {
		if _, ok := m.mounted[i]; !ok {
			m.mounted[i] = anim.New(anim.Mode(m.selected), m.now)
		}
	}
}

// animating reports whether any mounted card is still moving
func (m *Model) animating() bool {
	for _, a := range m.mounted {
		if !a.Done(m.now) {
			return true
		}
	}
	return false
}

// scheduleFrame starts the frame clock if something is moving and no
// frame is already pending
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return frameCmd()
}

// listContent renders every list row. Rows off screen are left blank.
func (m *Model) listContent() string {
	if len(m.items) == 0 {
		return ""
	}
	first, last := m.visibleRange()
	blank := strings.Repeat(" ", m.viewport.Width)

	rows := make([]string, 0, len(m.items)*itemHeight)
	for i := range m.items {
		if i < first || i > last {
			for j := 0; j < itemHeight; j++ {
				rows = append(rows, blank)
			}
			continue
		}
		rows = append(rows, m.renderItem(i)...)
	}
	return strings.Join(rows, "\n")
}

// renderItem draws item i as it looks at m.now
func (m *Model) renderItem(i int) []string {
	t := anim.Identity
	if a, ok := m.mounted[i]; ok {
		t = a.Sample(m.now)
	}

	width := m.viewport.Width - 2 // card margin
	if width < 1 {
		width = 1
	}
	card := renderCard(m.items[i], scaledWidth(width, t.Scale), t.Opacity)
	block := applyTransform(card, t, width, cardHeight)

	rows := make([]string, 0, itemHeight)
	for _, line := range block {
		rows = append(rows, " "+line+" ")
	}
	for j := cardHeight; j < itemHeight; j++ {
		rows = append(rows, strings.Repeat(" ", m.viewport.Width))
	}
	return rows
}
