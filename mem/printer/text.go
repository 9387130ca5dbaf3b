package printer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joshuapare/memsim/mem/alloc"
)

// StripLines renders the unit strip as lines of "|c|c|...|", wrapping every
// width units. Regions larger than MaxStripUnits yield no lines.
func StripLines(blocks []alloc.Block, capacity, width int, filler rune) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	cells := Cells(blocks, capacity, filler)

	lines := make([]string, 0, capacity/width+1)
	var sb strings.Builder
	for i, c := range cells {
		sb.WriteByte('|')
		sb.WriteRune(c.Rune)
		if (i+1)%width == 0 || i+1 == len(cells) {
			sb.WriteByte('|')
			lines = append(lines, sb.String())
			sb.Reset()
		}
	}
	return lines
}

// PrintStrip writes the unit strip, or the block table when the region is
// too large to draw.
func (p *Printer) PrintStrip(blocks []alloc.Block, capacity int) error {
	if !StripFits(capacity) {
		return p.PrintTable(blocks)
	}
	for _, line := range StripLines(blocks, capacity, p.opts.Width, p.opts.Filler) {
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable writes one row per block.
func (p *Printer) PrintTable(blocks []alloc.Block) error {
	ownerWidth := len(p.opts.FreeLabel)
	for _, b := range blocks {
		ownerWidth = max(ownerWidth, len(b.Owner))
	}

	if _, err := fmt.Fprintf(p.writer, "%-*s  %8s  %8s\n", ownerWidth, "OWNER", "OFFSET", "LENGTH"); err != nil {
		return err
	}
	for _, b := range blocks {
		owner := b.Owner
		if b.IsFree() {
			owner = p.opts.FreeLabel
		}
		_, err := fmt.Fprintf(p.writer, "%-*s  %8s  %8s\n",
			ownerWidth, owner,
			humanize.Comma(int64(b.Offset)),
			p.formatSize(b.Length),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// formatSize renders a unit count with thousands separators and the unit label.
func (p *Printer) formatSize(n int) string {
	return humanize.Comma(int64(n)) + " " + p.opts.Unit
}

// FormatSize renders n units the way table output does, e.g. "1,024 MB".
func (p *Printer) FormatSize(n int) string { return p.formatSize(n) }
