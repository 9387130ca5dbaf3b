// Package printer renders region snapshots as a unit strip, a block table or
// JSON.
package printer

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/joshuapare/memsim/mem/alloc"
)

const (
	DefaultWidth  = 16
	DefaultFiller = '.'
	DefaultUnit   = "MB"

	// MaxStripUnits is the largest capacity drawn as a unit strip. Larger
	// regions are printed as a table instead.
	MaxStripUnits = 1 << 16
)

// StripFits reports whether a region of capacity units can be drawn as a strip.
func StripFits(capacity int) bool { return capacity <= MaxStripUnits }

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the unit strip, one cell per unit.
	FormatText Format = "text"

	// FormatTable outputs one row per block.
	FormatTable Format = "table"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, table, json).
	// Default: FormatText
	Format Format

	// Width is the number of units per strip line (text format only).
	// Default: 16
	Width int

	// Filler is the rune drawn for free units.
	// Default: '.'
	Filler rune

	// FreeLabel names free blocks in table output.
	// Default: alloc.FreeOwner
	FreeLabel string

	// Unit is the label appended to sizes in table output.
	// Default: "MB"
	Unit string
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		Width:     DefaultWidth,
		Filler:    DefaultFiller,
		FreeLabel: alloc.FreeOwner,
		Unit:      DefaultUnit,
	}
}

// Printer writes region snapshots to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer. Zero-valued options fall back to defaults.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(r.Snapshot(), r.Capacity())
func New(w io.Writer, opts Options) *Printer {
	def := DefaultOptions()
	if opts.Format == "" {
		opts.Format = def.Format
	}
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Filler == 0 {
		opts.Filler = def.Filler
	}
	if opts.FreeLabel == "" {
		opts.FreeLabel = def.FreeLabel
	}
	if opts.Unit == "" {
		opts.Unit = def.Unit
	}
	return &Printer{opts: opts, writer: w}
}

// Options returns the effective options.
func (p *Printer) Options() Options { return p.opts }

// Print renders blocks in the configured format.
func (p *Printer) Print(blocks []alloc.Block, capacity int) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.PrintJSON(blocks, capacity)
	case FormatTable:
		return p.PrintTable(blocks)
	case FormatText:
		return p.PrintStrip(blocks, capacity)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// Cell is one unit of the region as drawn in the strip.
type Cell struct {
	Owner string // alloc.FreeOwner for free units
	Rune  rune   // glyph drawn for the unit
}

// Free reports whether the unit is unallocated.
func (c Cell) Free() bool { return c.Owner == alloc.FreeOwner }

// Cells expands blocks into one Cell per unit. Occupied units show the first
// rune of their owner, free units show filler. Units not covered by any block
// are drawn as free. It returns nil when the capacity exceeds MaxStripUnits.
func Cells(blocks []alloc.Block, capacity int, filler rune) []Cell {
	if !StripFits(capacity) {
		return nil
	}
	cells := make([]Cell, capacity)
	for i := range cells {
		cells[i] = Cell{Owner: alloc.FreeOwner, Rune: filler}
	}

	for _, b := range blocks {
		if b.IsFree() {
			continue
		}
		glyph, _ := utf8.DecodeRuneInString(b.Owner)
		for u := b.Offset; u < b.End() && u < capacity; u++ {
			if u >= 0 {
				cells[u] = Cell{Owner: b.Owner, Rune: glyph}
			}
		}
	}
	return cells
}
