package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memsim/internal/config"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model   Model
	lastCmd tea.Cmd

	// Copied collects clipboard writes instead of touching the system clipboard
	Copied []string
}

// NewTestHelper creates a test helper with a model of the given capacity
func NewTestHelper(capacity int) *TestHelper {
	cfg := config.Default()
	cfg.Capacity = capacity
	return NewTestHelperWithConfig(cfg)
}

// NewTestHelperWithConfig creates a test helper from full settings
func NewTestHelperWithConfig(cfg config.Config) *TestHelper {
	h := &TestHelper{model: NewModel(cfg)}
	h.model.copyText = func(s string) error {
		h.Copied = append(h.Copied, s)
		return nil
	}
	return h
}

func (h *TestHelper) send(msg tea.Msg) *TestHelper {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	h.lastCmd = cmd
	return h
}

// SendKey simulates a special key press (enter, esc, arrows)
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends each rune of s as a separate key press
func (h *TestHelper) Type(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// Alloc drives the load prompts: a, name, enter, size, enter
func (h *TestHelper) Alloc(owner, size string) *TestHelper {
	h.SendKeyRune('a').Type(owner).SendKey(tea.KeyEnter)
	return h.Type(size).SendKey(tea.KeyEnter)
}

// Free drives the free prompt, replacing any prefilled name
func (h *TestHelper) Free(owner string) *TestHelper {
	h.SendKeyRune('f')
	h.model.input.SetValue("")
	return h.Type(owner).SendKey(tea.KeyEnter)
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// LastCmd returns the command produced by the most recent message
func (h *TestHelper) LastCmd() tea.Cmd {
	return h.lastCmd
}
