package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"animlists/anim"
	"animlists/grid"
	"animlists/sample"
)

const (
	chipColumns    = 3
	headerHeight   = 1
	chipRowPadding = 1

	frameInterval = 16 * time.Millisecond
)

// FrameMsg drives running animations, one per frame
type FrameMsg time.Time

// CatalogUpdateMsg is sent when the watched catalog file is reparsed
type CatalogUpdateMsg struct {
	Path  string
	Items []sample.Item
	Err   error
}

// Config holds the startup options
type Config struct {
	Mode  int              // initially selected animation
	Theme string           // "light", "dark" or "auto"
	Clock func() time.Time // defaults to time.Now
}

// Model is the Bubble Tea model for the animated list screen
type Model struct {
	items         []sample.Item
	catalogEvents <-chan CatalogUpdateMsg

	// index of the selected animation; the only state chips write
	selected int

	// animations of the cards currently on screen, keyed by item index
	mounted map[int]*anim.Animation

	chips    grid.Result
	viewport viewport.Model
	width    int
	height   int

	clock   func() time.Time
	now     time.Time
	ticking bool

	themeIndex int

	help help.Model
	keys keyMap

	// Status message (catalog reload problems)
	statusMessage string
	// One-shot note shown until the next key press
	notice string
}

// New creates the screen model for items
func New(items []sample.Item, catalogEvents <-chan CatalogUpdateMsg, cfg Config) Model {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	themeIndex := themeIndexFor(cfg.Theme)
	themes[themeIndex].applyStyles()

	vp := viewport.New(0, 0)

	return Model{
		items:         items,
		catalogEvents: catalogEvents,
		selected:      cfg.Mode,
		mounted:       make(map[int]*anim.Animation),
		viewport:      vp,
		clock:         clock,
		now:           clock(),
		themeIndex:    themeIndex,
		help:          help.New(),
		keys:          keys,
	}
}

// Init starts listening for catalog updates
func (m Model) Init() tea.Cmd {
	if m.catalogEvents != nil {
		return m.waitForCatalogUpdate()
	}
	return nil
}

// frameCmd returns a command that sends a FrameMsg after one frame
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForCatalogUpdate waits for a reparse from the watcher
func (m Model) waitForCatalogUpdate() tea.Cmd {
	return func() tea.Msg {
		if m.catalogEvents == nil {
			return nil
		}
		event, ok := <-m.catalogEvents
		if !ok {
			return nil
		}
		return event
	}
}
