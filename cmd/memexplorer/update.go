package main

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memsim/cmd/memexplorer/logger"
	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/mem/printer"
	"github.com/joshuapare/memsim/pkg/memsim"
	"github.com/joshuapare/memsim/pkg/types"
)

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(maxBarWidth, msg.Width-chromeColumns))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != NormalMode {
			return m.handleInputKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	if m.inputMode != NormalMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help overlay swallows everything except its own toggle and quit.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("quit")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.blocks())-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Alloc):
		return m.startInput(OwnerMode, i18n.OwnerPrompt, "")

	case key.Matches(msg, m.keys.Free):
		owner := ""
		if b, ok := m.selectedBlock(); ok && !b.IsFree() {
			owner = b.Owner
		}
		return m.startInput(FreeMode, i18n.FreePrompt, owner)

	case key.Matches(msg, m.keys.Reset):
		return m.startInput(ResetMode, i18n.ResetPrompt, "")

	case key.Matches(msg, m.keys.Compact):
		m.exec(types.Command{Kind: types.KindCompact})

	case key.Matches(msg, m.keys.Internal):
		m.exec(types.Command{Kind: types.KindInternal})

	case key.Matches(msg, m.keys.External):
		m.exec(types.Command{Kind: types.KindExternal})

	case key.Matches(msg, m.keys.Stats):
		m.exec(types.Command{Kind: types.KindStats})

	case key.Matches(msg, m.keys.Copy):
		m.copyLayout()
	}
	return m, nil
}

func (m Model) startInput(mode InputMode, promptKey, value string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Prompt = m.msg.Sprintf(promptKey)
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.endInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) endInput() {
	m.inputMode = NormalMode
	m.pendingOwner = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.inputMode {
	case OwnerMode:
		// Size prompt follows; the name is validated by the allocator.
		m.pendingOwner = value
		m.inputMode = SizeMode
		m.input.Prompt = m.msg.Sprintf(i18n.SizePrompt)
		m.input.SetValue("")
		return m, nil

	case SizeMode:
		owner := m.pendingOwner
		m.endInput()
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			m.setStatus(m.msg.Sprintf(i18n.SizeRejected), true)
			return m, nil
		}
		if m.exec(types.Alloc(owner, size)).OK() {
			m.selectOwner(owner)
		}

	case FreeMode:
		m.endInput()
		m.exec(types.Free(value))

	case ResetMode:
		m.endInput()
		capacity := 0
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil {
				m.setStatus(m.msg.Sprintf(i18n.CapacityInvalid), true)
				return m, nil
			}
			capacity = n
		}
		m.exec(types.Command{Kind: types.KindReset, Size: capacity})
	}
	return m, nil
}

// exec runs cmd against the session and reports it on the status line.
func (m *Model) exec(cmd types.Command) memsim.Outcome {
	o := m.session.Exec(cmd)
	logger.Debug("exec", "command", cmd.String(), "ok", o.OK(), "error", o.Err)

	m.setStatus(o.Message(m.msg), !o.OK())
	m.clampSelection()
	return o
}

// copyLayout puts the strip and block table on the clipboard as plain text.
func (m *Model) copyLayout() {
	r := m.session.Region()
	var buf bytes.Buffer
	buf.WriteString(m.msg.Sprintf(i18n.StateHeader, r.Capacity()))
	buf.WriteByte('\n')

	opts := printer.Options{
		Width:     m.cfg.Width,
		Filler:    m.cfg.FillerRune(),
		FreeLabel: m.msg.Sprintf(i18n.FreeLabel),
	}
	opts.Format = printer.FormatText
	_ = printer.New(&buf, opts).Print(r.Snapshot(), r.Capacity())
	buf.WriteByte('\n')
	opts.Format = printer.FormatTable
	_ = printer.New(&buf, opts).Print(r.Snapshot(), r.Capacity())

	if err := m.copyText(buf.String()); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.setStatus(m.msg.Sprintf(i18n.CopyFailed, err), true)
		return
	}
	m.setStatus(m.msg.Sprintf(i18n.Copied), false)
}
