package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/internal/config"
	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/internal/termsize"
	"github.com/joshuapare/memsim/mem/printer"
	"github.com/joshuapare/memsim/pkg/memsim"
	"github.com/joshuapare/memsim/pkg/types"
)

// console renders session outcomes for a terminal or, with --json, as one
// JSON object per outcome.
type console struct {
	out    io.Writer
	errOut io.Writer

	cfg     config.Config
	msg     *message.Printer
	layout  *printer.Printer
	session *memsim.Session

	okStyle   *color.Color
	errStyle  *color.Color
	warnStyle *color.Color
	headStyle *color.Color
}

// outcomeJSON is the --json rendering of one outcome.
type outcomeJSON struct {
	Command string          `json:"command"`
	Line    int             `json:"line,omitempty"`
	OK      bool            `json:"ok"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Layout  json.RawMessage `json:"layout,omitempty"`
}

func newConsole(out, errOut io.Writer, cfg config.Config, format printer.Format) *console {
	msg := i18n.New(cfg.Language)
	c := &console{
		out:       out,
		errOut:    errOut,
		cfg:       cfg,
		msg:       msg,
		okStyle:   color.New(color.FgGreen),
		errStyle:  color.New(color.FgRed),
		warnStyle: color.New(color.FgYellow),
		headStyle: color.New(color.Bold),
	}
	if !cfg.Color || jsonOut {
		for _, s := range []*color.Color{c.okStyle, c.errStyle, c.warnStyle, c.headStyle} {
			s.DisableColor()
		}
	}

	c.layout = printer.New(out, printer.Options{
		Format:    format,
		Width:     stripWidth(cfg.Width, out, errOut),
		Filler:    cfg.FillerRune(),
		FreeLabel: msg.Sprintf(i18n.FreeLabel),
	})
	return c
}

// terminalWidth reports the column count of a terminal file descriptor.
var terminalWidth = termsize.Width

// stripWidth resolves a configured width of 0 to what fits the terminal.
// The terminal size is reported on errOut with --verbose.
func stripWidth(width int, out, errOut io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := out.(*os.File); ok {
		if cols, ok := terminalWidth(f.Fd()); ok {
			n := termsize.UnitsPerLine(cols)
			printVerbose(errOut, "Terminal: %d columns, %d units per line\n", cols, n)
			return n
		}
	}
	return printer.DefaultWidth
}

// start opens a session on a fresh region of the given capacity.
func (c *console) start(capacity int) {
	c.session = memsim.NewSession(memsim.Options{Capacity: capacity, Verify: c.cfg.Verify})
	if w := c.session.Warning(); w != nil {
		c.warnStyle.Fprintln(c.errOut, c.msg.Sprintf(i18n.CapacityWarning, w.Requested, w.Used))
	}
}

// exec runs cmd and reports the outcome.
func (c *console) exec(cmd types.Command) (memsim.Outcome, error) {
	o := c.session.Exec(cmd)
	return o, c.report(o)
}

func (c *console) report(o memsim.Outcome) error {
	if jsonOut {
		return c.reportJSON(o)
	}

	kind := o.Command.Kind
	explicit := kind == types.KindShow || kind == types.KindHelp

	if text := o.Message(c.msg); text != "" {
		switch {
		case !o.OK():
			c.errStyle.Fprintln(c.out, text)
		case !quiet || explicit:
			c.okStyle.Fprintln(c.out, text)
		}
	}

	if o.ShowsLayout() && (!quiet || explicit) {
		if err := c.showLayout(); err != nil {
			return err
		}
	}

	if kind.Mutates() {
		r := c.session.Region()
		printVerbose(c.out, "%s\n", c.msg.Sprintf(i18n.UsageReport, r.TotalUsed(), r.TotalFree(), r.Capacity()))
	}
	return nil
}

func (c *console) showLayout() error {
	r := c.session.Region()
	fmt.Fprintln(c.out)
	c.headStyle.Fprintln(c.out, c.msg.Sprintf(i18n.StateHeader, r.Capacity()))
	if c.layout.Options().Format == printer.FormatText && !printer.StripFits(r.Capacity()) {
		c.warnStyle.Fprintln(c.out, c.msg.Sprintf(i18n.StripOmitted, printer.MaxStripUnits))
	}
	return c.layout.Print(r.Snapshot(), r.Capacity())
}

func (c *console) reportJSON(o memsim.Outcome) error {
	rec := outcomeJSON{
		Command: o.Command.String(),
		Line:    o.Command.Line,
		OK:      o.OK(),
		Message: o.Message(c.msg),
	}
	if o.Err != nil {
		rec.Error = o.Err.Error()
	}

	if o.ShowsLayout() {
		var buf bytes.Buffer
		r := c.session.Region()
		p := printer.New(&buf, printer.Options{Format: printer.FormatJSON})
		if err := p.Print(r.Snapshot(), r.Capacity()); err != nil {
			return err
		}
		rec.Layout = json.RawMessage(bytes.TrimSpace(buf.Bytes()))
	}
	return printJSON(c.out, rec)
}

// say prints a localised line that is not tied to an outcome.
func (c *console) say(key string, args ...interface{}) {
	fmt.Fprintln(c.out, c.msg.Sprintf(key, args...))
}

// prompt prints a localised prompt without a trailing newline.
func (c *console) prompt(key string) {
	fmt.Fprint(c.out, c.msg.Sprintf(key))
}
