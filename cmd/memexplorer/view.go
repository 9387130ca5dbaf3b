package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/internal/termsize"
	"github.com/joshuapare/memsim/mem/printer"
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		// Rebuilt on every render; Update returns copies, so stored
		// pointers into the model would go stale.
		helpOverlay := overlay.New(
			&helpView{model: &m},
			&mainView{model: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		paneStyle.Render(m.renderStrip()),
		m.renderBar(),
		m.renderTable(),
	}
	if m.inputMode != NormalMode {
		sections = append(sections, inputStyle.Render(m.input.View()))
	}
	if m.statusMessage != "" {
		sections = append(sections, m.renderStatus())
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("Memory Explorer"),
		"  ",
		infoStyle.Render(m.msg.Sprintf(i18n.StateHeader, m.session.Region().Capacity())),
	)
}

// stripWidth is the number of units per strip line: the configured width,
// narrowed to what fits the window.
func (m Model) stripWidth() int {
	w := m.cfg.Width
	if m.width > 0 {
		if fit := termsize.UnitsPerLine(m.width - chromeColumns); w <= 0 || w > fit {
			w = fit
		}
	}
	if w <= 0 {
		w = printer.DefaultWidth
	}
	return w
}

// renderStrip draws one cell per unit, each process in its own color.
// Regions too large to draw get a note pointing at the table.
func (m Model) renderStrip() string {
	r := m.session.Region()
	if !printer.StripFits(r.Capacity()) {
		return infoStyle.Render(m.msg.Sprintf(i18n.StripOmitted, printer.MaxStripUnits))
	}
	cells := printer.Cells(r.Snapshot(), r.Capacity(), m.cfg.FillerRune())
	width := m.stripWidth()
	bar := separatorStyle.Render("|")

	var sb strings.Builder
	for i, c := range cells {
		sb.WriteString(bar)
		if c.Free() {
			sb.WriteString(freeCellStyle.Render(string(c.Rune)))
		} else {
			sb.WriteString(ownerCellStyle(c.Owner).Render(string(c.Rune)))
		}
		if (i+1)%width == 0 || i+1 == len(cells) {
			sb.WriteString(bar)
			if i+1 < len(cells) {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

func (m Model) renderBar() string {
	r := m.session.Region()
	usage := m.msg.Sprintf(i18n.UsageReport, r.TotalUsed(), r.TotalFree(), r.Capacity())
	parts := []string{m.bar.ViewAs(m.occupancy()), "  ", infoStyle.Render(usage)}
	if ext := r.ExternalFragmentation(); ext.Fragmented() {
		parts = append(parts, "  ", statusErrorStyle.Render(m.msg.Sprintf(i18n.FragmentedTag, ext.Extents)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderTable lists blocks in offset order with the cursor row highlighted.
func (m Model) renderTable() string {
	blocks := m.blocks()
	freeLabel := m.msg.Sprintf(i18n.FreeLabel)
	sizes := printer.New(io.Discard, printer.Options{FreeLabel: freeLabel})

	ownerWidth := len(freeLabel)
	for _, b := range blocks {
		ownerWidth = max(ownerWidth, len(b.Owner))
	}

	var sb strings.Builder
	sb.WriteString(tableHeaderStyle.Render(fmt.Sprintf("  %-*s  %8s  %10s", ownerWidth, "OWNER", "OFFSET", "LENGTH")))
	for i, b := range blocks {
		owner, swatch := b.Owner, ownerCellStyle(b.Owner).Render(" ")
		if b.IsFree() {
			owner, swatch = freeLabel, freeCellStyle.Render(string(m.cfg.FillerRune()))
		}
		row := fmt.Sprintf("%-*s  %8s  %10s", ownerWidth, owner,
			humanize.Comma(int64(b.Offset)), sizes.FormatSize(b.Length))

		sb.WriteByte('\n')
		sb.WriteString(swatch + " ")
		if i == m.selected {
			sb.WriteString(tableSelectedStyle.Render(row))
		} else {
			sb.WriteString(row)
		}
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	if m.statusIsError {
		return statusErrorStyle.Render(m.statusMessage)
	}
	return statusStyle.Render(m.statusMessage)
}

// renderHelpOverlay lists every binding grouped as in KeyMap.FullHelp.
func (m Model) renderHelpOverlay() string {
	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	for _, group := range m.keys.FullHelp() {
		sb.WriteByte('\n')
		for _, b := range group {
			h := b.Help()
			sb.WriteString("\n")
			sb.WriteString(helpKeyStyle.Render(h.Key))
			sb.WriteString(helpDescStyle.Render(h.Desc))
		}
	}
	return modalStyle.Render(sb.String())
}

// mainView wraps the main UI as the overlay background.
type mainView struct {
	model *Model
}

func (v *mainView) Init() tea.Cmd                       { return nil }
func (v *mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *mainView) View() string {
	// Fill the window so the overlay always has a background to sit on.
	return lipgloss.Place(v.model.width, v.model.height, lipgloss.Left, lipgloss.Top, v.model.renderMain())
}

// helpView is the help overlay foreground.
type helpView struct {
	model *Model
}

func (v *helpView) Init() tea.Cmd                       { return nil }
func (v *helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *helpView) View() string                        { return v.model.renderHelpOverlay() }
