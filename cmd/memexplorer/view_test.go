package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/internal/config"
)

func TestView_Strip(t *testing.T) {
	h := NewTestHelper(8).Alloc("A", "4")
	view := h.GetView()

	assert.Contains(t, view, "Memory Explorer")
	assert.Contains(t, view, "Memory state (8 MB bar):")
	assert.Contains(t, view, "|A|A|A|A|.|.|.|.|")
	assert.Contains(t, view, "Used: 4 MB, free: 4 MB of 8 MB")
	assert.Contains(t, view, "OWNER")
	assert.Contains(t, view, "FREE")
}

func TestView_StripWrapsToWindow(t *testing.T) {
	h := NewTestHelper(16).SendWindowSize(30, 40)

	m := h.GetModel()
	assert.Equal(t, 8, m.stripWidth())
	assert.Equal(t, 24, m.bar.Width)
	assert.Equal(t, 2, strings.Count(h.GetView(), "|.|.|.|.|.|.|.|.|"))
}

func TestStripWidth(t *testing.T) {
	tests := []struct {
		name        string
		configured  int
		windowWidth int
		want        int
	}{
		{"configured, no window", 16, 0, 16},
		{"terminal width, no window", 0, 0, 16},
		{"configured fits", 16, 120, 16},
		{"narrowed to window", 32, 40, 16},
		{"terminal width from window", 0, 80, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Width = tt.configured
			h := NewTestHelperWithConfig(cfg)
			if tt.windowWidth > 0 {
				h.SendWindowSize(tt.windowWidth, 40)
			}
			assert.Equal(t, tt.want, h.GetModel().stripWidth())
		})
	}
}

func TestView_FragmentedTag(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10").Alloc("B", "20")
	assert.NotContains(t, h.GetView(), "fragmented")

	h.Free("A")
	assert.Contains(t, h.GetView(), "fragmented: 2 free blocks")

	h.SendKeyRune('c')
	assert.NotContains(t, h.GetView(), "fragmented")
}

func TestView_InputPrompt(t *testing.T) {
	h := NewTestHelper(8).SendKeyRune('a').Type("web")
	view := h.GetView()
	assert.Contains(t, view, "Process name: ")
	assert.Contains(t, view, "web")
}

func TestView_StatusLine(t *testing.T) {
	h := NewTestHelper(8)
	assert.NotContains(t, h.GetView(), "not found")

	h.Free("ghost")
	assert.Contains(t, h.GetView(), "Process 'ghost' not found.")
}

func TestView_HelpOverlay(t *testing.T) {
	h := NewTestHelper(8).SendWindowSize(100, 40)

	h.SendKeyRune('?')
	require.True(t, h.GetModel().showHelp)
	view := h.GetView()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "load process")
	assert.Contains(t, view, "external fragmentation")

	// Commands are ignored while the overlay is open.
	h.SendKeyRune('a')
	assert.Equal(t, NormalMode, h.GetModel().inputMode)

	h.SendKeyRune('?')
	assert.False(t, h.GetModel().showHelp)
	assert.NotContains(t, h.GetView(), "Keyboard Shortcuts")
}
