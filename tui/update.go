package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"animlists/anim"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.now = m.clock()
		return m.updateKeys(msg)

	case tea.MouseMsg:
		m.now = m.clock()
		return m.updateMouse(msg)

	case FrameMsg:
		m.now = time.Time(msg)
		m.ticking = false
		m.refresh()
		return m, m.scheduleFrame()

	case tea.WindowSizeMsg:
		m.now = m.clock()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.refresh()
		return m, m.scheduleFrame()

	case CatalogUpdateMsg:
		m.now = m.clock()
		if msg.Err != nil {
			log.Printf("Catalog reload failed: %v", msg.Err)
			m.statusMessage = "catalog reload failed: " + msg.Err.Error()
			m.resize()
			m.refresh()
			return m, m.waitForCatalogUpdate()
		}
		m.statusMessage = ""
		m.items = msg.Items
		// new records, new cards: everything on screen remounts
		m.mounted = make(map[int]*anim.Animation)
		m.resize()
		m.refresh()
		return m, tea.Batch(m.scheduleFrame(), m.waitForCatalogUpdate())
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notice := ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.selectPrev()

	case key.Matches(msg, m.keys.Next):
		m.selectNext()

	case key.Matches(msg, m.keys.Pick):
		m.selectMode(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-itemHeight)

	case key.Matches(msg, m.keys.Down):
		m.scrollBy(itemHeight)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)

	case key.Matches(msg, m.keys.Theme):
		m.themeIndex = (m.themeIndex + 1) % len(themes)
		themes[m.themeIndex].applyStyles()
		notice = themes[m.themeIndex].Name + " theme"

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		return m, nil
	}

	m.notice = notice

	// the footer height can change with the selection, notice or help mode
	m.resize()
	m.refresh()
	return m, m.scheduleFrame()
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-itemHeight)
	case tea.MouseButtonWheelDown:
		m.scrollBy(itemHeight)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		idx := m.chipAt(msg.X, msg.Y)
		if idx < 0 {
			return m, nil
		}
		m.selectMode(idx)
		m.resize()
	default:
		return m, nil
	}

	m.refresh()
	return m, m.scheduleFrame()
}
