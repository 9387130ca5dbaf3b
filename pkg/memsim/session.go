package memsim

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/memsim/internal/script"
	"github.com/joshuapare/memsim/mem/alloc"
	"github.com/joshuapare/memsim/mem/verify"
	"github.com/joshuapare/memsim/pkg/types"
)

// ErrUnsupported is returned for commands a session cannot execute.
var ErrUnsupported = errors.New("memsim: unsupported command")

// Options configures a Session.
type Options struct {
	// Capacity of the region in units. Non-positive values fall back to
	// alloc.DefaultCapacity with a warning (see Session.Warning).
	Capacity int

	// Verify checks all layout invariants after each mutating command.
	Verify bool
}

// Session executes simulator commands against one region.
type Session struct {
	opts    Options
	region  *alloc.Region
	warning *alloc.ConfigWarning
}

// NewSession creates a session with a fresh region.
func NewSession(opts Options) *Session {
	s := &Session{opts: opts}
	s.region, s.warning = alloc.New(opts.Capacity)
	return s
}

// Region exposes the region for rendering and queries. Callers must not
// mutate it behind the session's back.
func (s *Session) Region() *alloc.Region { return s.region }

// Warning returns the capacity warning raised when the current region was
// built, or nil.
func (s *Session) Warning() *alloc.ConfigWarning { return s.warning }

// Exec runs one command and reports what happened.
func (s *Session) Exec(cmd types.Command) Outcome {
	o := Outcome{Command: cmd}

	switch cmd.Kind {
	case types.KindAlloc:
		o.Block, o.Err = s.region.Allocate(cmd.Owner, cmd.Size)
	case types.KindFree:
		o.Block, o.Err = s.region.Release(cmd.Owner)
	case types.KindCompact:
		s.region.Compact()
	case types.KindReset:
		capacity := cmd.Size
		if capacity == 0 {
			capacity = s.region.Capacity()
		}
		s.region, s.warning = alloc.New(capacity)
		o.Warning = s.warning
	case types.KindShow, types.KindHelp, types.KindExit:
	case types.KindInternal:
		o.Internal = s.region.InternalFragmentation()
	case types.KindExternal:
		o.External = s.region.ExternalFragmentation()
	case types.KindStats:
		o.Stats = s.region.Stats()
	default:
		o.Err = fmt.Errorf("%w: %v", ErrUnsupported, cmd.Kind)
		return o
	}

	o.Capacity = s.region.Capacity()

	if s.opts.Verify && o.Err == nil && cmd.Kind.Mutates() {
		if err := verify.AllInvariants(s.region.Snapshot(), s.region.Capacity()); err != nil {
			o.Err = err
		}
	}
	return o
}

// RunScript parses a script from r and executes it, passing every outcome to
// fn. Execution stops after an exit command or when fn returns an error.
func (s *Session) RunScript(r io.Reader, fn func(Outcome) error) error {
	cmds, err := script.ParseReader(r)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		o := s.Exec(cmd)
		if err := fn(o); err != nil {
			return err
		}
		if cmd.Kind == types.KindExit {
			return nil
		}
	}
	return nil
}
