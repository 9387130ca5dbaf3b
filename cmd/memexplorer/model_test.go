package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/internal/config"
)

func TestAllocFlow(t *testing.T) {
	h := NewTestHelper(64)

	h.SendKeyRune('a')
	require.Equal(t, OwnerMode, h.GetModel().inputMode)
	h.Type("A").SendKey(tea.KeyEnter)
	require.Equal(t, SizeMode, h.GetModel().inputMode)
	h.Type("10").SendKey(tea.KeyEnter)

	m := h.GetModel()
	assert.Equal(t, NormalMode, m.inputMode)
	assert.Equal(t, "Process 'A' (10 MB) loaded at 0.", m.statusMessage)
	assert.False(t, m.statusIsError)

	b, ok := m.session.Region().Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 0, b.Offset)
	assert.Equal(t, 10, b.Length)
}

func TestAlloc_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		owner      string
		size       string
		wantStatus string
	}{
		{"size not a number", "X", "abc", "Invalid process size."},
		{"size zero", "X", "0", "Invalid process size."},
		{"duplicate", "A", "2", "Error: process 'A' is already loaded."},
		{"reserved name", "FREE", "2", "Error: the process name cannot be 'FREE'."},
		{"empty name", "", "2", "Error: the process name cannot be empty."},
		{"no space", "Z", "99", "Not enough contiguous free space for process 'Z' (99 MB). Try compacting."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(16).Alloc("A", "4")
			h.Alloc(tt.owner, tt.size)

			m := h.GetModel()
			assert.Equal(t, tt.wantStatus, m.statusMessage)
			assert.True(t, m.statusIsError)
			assert.Equal(t, 12, m.session.Region().TotalFree())
		})
	}
}

func TestCancelInput(t *testing.T) {
	h := NewTestHelper(16)
	h.SendKeyRune('a').Type("Z").SendKey(tea.KeyEsc)

	m := h.GetModel()
	assert.Equal(t, NormalMode, m.inputMode)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 16, m.session.Region().TotalFree())
}

func TestFree_PrefillsSelectedOwner(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10").Alloc("B", "20")

	h.SendKeyRune('f')
	require.Equal(t, FreeMode, h.GetModel().inputMode)
	assert.Equal(t, "B", h.GetModel().input.Value())

	h.SendKey(tea.KeyEnter)
	m := h.GetModel()
	assert.Equal(t, "Process 'B' freed.", m.statusMessage)
	_, ok := m.session.Region().Lookup("B")
	assert.False(t, ok)
}

func TestAlloc_SelectsNewBlock(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10").Alloc("B", "20")
	assert.Equal(t, 1, h.GetModel().selected)

	h.Free("A").Alloc("C", "4")
	b, ok := h.GetModel().selectedBlock()
	require.True(t, ok)
	assert.Equal(t, "C", b.Owner)
	assert.Equal(t, 0, h.GetModel().selected)

	h.Alloc("D", "999")
	b, _ = h.GetModel().selectedBlock()
	assert.Equal(t, "C", b.Owner, "a failed load keeps the cursor")
}

func TestFree_NotFound(t *testing.T) {
	h := NewTestHelper(8).Free("ghost")

	m := h.GetModel()
	assert.Equal(t, "Process 'ghost' not found.", m.statusMessage)
	assert.True(t, m.statusIsError)
}

func TestCompact(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10").Alloc("B", "20").Free("A")
	h.SendKeyRune('c')

	m := h.GetModel()
	assert.Equal(t, "Memory physically compacted.", m.statusMessage)
	b, ok := m.session.Region().Lookup("B")
	require.True(t, ok)
	assert.Equal(t, 0, b.Offset)
	assert.Equal(t, 1, m.session.Region().FreeBlockCount())
}

func TestReports(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10").Alloc("B", "20").Free("A")

	h.SendKeyRune('e')
	assert.Equal(t, "Total external fragmentation: 44 MB (in 2 free block(s), largest 34 MB)", h.GetModel().statusMessage)

	h.SendKeyRune('i')
	assert.True(t, strings.HasPrefix(h.GetModel().statusMessage,
		"Internal fragmentation (simple allocation-waste simulation): 1 MB"))

	h.SendKeyRune('s')
	assert.True(t, strings.HasPrefix(h.GetModel().statusMessage, "Allocations: 2 (0 failed"))
}

func TestReset(t *testing.T) {
	h := NewTestHelper(64).Alloc("A", "10")

	h.SendKeyRune('R').SendKey(tea.KeyEnter)
	m := h.GetModel()
	assert.Equal(t, "Memory reset to 64 MB.", m.statusMessage)
	assert.Equal(t, 64, m.session.Region().TotalFree())

	h.SendKeyRune('R').Type("128").SendKey(tea.KeyEnter)
	assert.Equal(t, 128, h.GetModel().session.Region().Capacity())

	h.SendKeyRune('R').Type("lots").SendKey(tea.KeyEnter)
	m = h.GetModel()
	assert.True(t, m.statusIsError)
	assert.Equal(t, 128, m.session.Region().Capacity())
}

func TestQuit(t *testing.T) {
	h := NewTestHelper(8)

	h.SendKeyRune('a').SendKeyRune('q')
	assert.Equal(t, "q", h.GetModel().input.Value(), "q is text while a prompt is open")
	h.SendKey(tea.KeyEsc)

	h.SendKeyRune('q')
	cmd := h.LastCmd()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestSelectionFollowsLayout(t *testing.T) {
	h := NewTestHelper(8).Alloc("A", "4")

	h.SendKey(tea.KeyDown).SendKey(tea.KeyDown)
	assert.Equal(t, 1, h.GetModel().selected)

	h.SendKeyRune('k')
	assert.Equal(t, 0, h.GetModel().selected)

	h.SendKeyRune('j').Free("A")
	assert.Equal(t, 0, h.GetModel().selected, "one block left after merging")
}

func TestCopyLayout(t *testing.T) {
	h := NewTestHelper(8).Alloc("A", "4")
	h.SendKeyRune('y')

	require.Len(t, h.Copied, 1)
	assert.Contains(t, h.Copied[0], "Memory state (8 MB bar):\n|A|A|A|A|.|.|.|.|\n")
	assert.Contains(t, h.Copied[0], "OWNER")
	assert.Equal(t, "Layout copied to clipboard.", h.GetModel().statusMessage)
}

func TestCopyLayout_Failure(t *testing.T) {
	h := NewTestHelper(8)
	h.model.copyText = func(string) error { return errors.New("no display") }
	h.SendKeyRune('y')

	m := h.GetModel()
	assert.True(t, m.statusIsError)
	assert.Equal(t, "Could not copy to clipboard: no display", m.statusMessage)
}

func TestCapacityWarning(t *testing.T) {
	m := NewTestHelper(-1).GetModel()
	assert.True(t, m.statusIsError)
	assert.Equal(t, "Warning: invalid memory size (-1). Using 64 MB instead.", m.statusMessage)
	assert.Equal(t, 64, m.session.Region().Capacity())
}

func TestHugeRegion(t *testing.T) {
	h := NewTestHelper(1 << 40).Alloc("A", "10").SendWindowSize(100, 40)

	view := h.GetView()
	assert.Contains(t, view, "Memory above 65,536 MB is not drawn unit by unit; showing the block table.")
	assert.Contains(t, view, "1,099,511,627,766 MB")
	assert.NotContains(t, view, "|A|")

	h.SendKeyRune('y')
	require.Len(t, h.Copied, 1)
	assert.Contains(t, h.Copied[0], "OWNER")
	assert.NotContains(t, h.Copied[0], "|A|")
}

func TestSpanish(t *testing.T) {
	cfg := config.Default()
	cfg.Capacity = 8
	cfg.Language = config.LangSpanish

	h := NewTestHelperWithConfig(cfg).Alloc("A", "4")
	assert.Equal(t, "Proceso 'A' (4 MB) cargado en 0.", h.GetModel().statusMessage)
	assert.Contains(t, h.GetView(), "Libre")
}
