package main

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/cmd/memexplorer/logger"
	"github.com/joshuapare/memsim/internal/config"
	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/mem/alloc"
	"github.com/joshuapare/memsim/pkg/memsim"
)

// InputMode represents which prompt, if any, owns the keyboard.
type InputMode int

const (
	NormalMode InputMode = iota
	OwnerMode            // alloc: process name
	SizeMode             // alloc: process size
	FreeMode             // free: process name
	ResetMode            // reset: new capacity
)

// Layout constants
const (
	maxBarWidth   = 60
	chromeColumns = 6 // pane border and padding
)

// Model is the main application model
type Model struct {
	cfg     config.Config
	session *memsim.Session
	msg     *message.Printer
	keys    KeyMap

	input        textinput.Model
	inputMode    InputMode
	pendingOwner string // owner typed in OwnerMode, used by SizeMode

	bar  progress.Model
	help help.Model

	// selected indexes the block table
	selected int

	width  int
	height int

	showHelp bool

	// Status line feedback for the last command
	statusMessage string
	statusIsError bool

	// copyText writes to the system clipboard; swapped out in tests
	copyText func(string) error
}

// NewModel creates a new TUI model with a fresh region sized by cfg.
func NewModel(cfg config.Config) Model {
	ti := textinput.New()
	ti.CharLimit = 64

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth

	m := Model{
		cfg:      cfg,
		session:  memsim.NewSession(memsim.Options{Capacity: cfg.Capacity, Verify: cfg.Verify}),
		msg:      i18n.New(cfg.Language),
		keys:     DefaultKeyMap(),
		input:    ti,
		bar:      bar,
		help:     help.New(),
		copyText: clipboard.WriteAll,
	}

	if w := m.session.Warning(); w != nil {
		m.setStatus(m.msg.Sprintf(i18n.CapacityWarning, w.Requested, w.Used), true)
		logger.Warn("capacity fallback", "requested", w.Requested, "used", w.Used)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMessage = text
	m.statusIsError = isError
}

func (m Model) blocks() []alloc.Block {
	return m.session.Region().Snapshot()
}

// selectedBlock returns the block under the table cursor.
func (m Model) selectedBlock() (alloc.Block, bool) {
	blocks := m.blocks()
	if m.selected < 0 || m.selected >= len(blocks) {
		return alloc.Block{}, false
	}
	return blocks[m.selected], true
}

// clampSelection keeps the cursor on an existing block after the layout
// changes.
func (m *Model) clampSelection() {
	n := len(m.session.Region().Snapshot())
	m.selected = max(0, min(m.selected, n-1))
}

// selectOwner moves the table cursor to owner's block, if it is loaded.
func (m *Model) selectOwner(owner string) {
	b, ok := m.session.Region().Lookup(owner)
	if !ok {
		return
	}
	for i, blk := range m.blocks() {
		if blk.Offset == b.Offset {
			m.selected = i
			return
		}
	}
}

// occupancy is the used fraction of the region.
func (m Model) occupancy() float64 {
	r := m.session.Region()
	return float64(r.TotalUsed()) / float64(r.Capacity())
}
