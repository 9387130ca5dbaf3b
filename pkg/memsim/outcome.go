package memsim

import (
	"errors"
	"strings"

	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/mem/alloc"
	"github.com/joshuapare/memsim/mem/verify"
	"github.com/joshuapare/memsim/pkg/types"
)

// Outcome is the result of executing one command.
type Outcome struct {
	Command types.Command
	Err     error

	Block    alloc.Block                 // alloc: placed block; free: released block
	Capacity int                         // region capacity after the command
	Warning  *alloc.ConfigWarning        // reset with an unusable capacity
	Internal alloc.InternalFragmentation // internal
	External alloc.ExternalFragmentation // external
	Stats    alloc.Stats                 // stats
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Rejected reports whether the command failed input validation (bad size or
// name) as opposed to failing against the current layout.
func (o Outcome) Rejected() bool {
	return errors.Is(o.Err, alloc.ErrInvalidSize) ||
		errors.Is(o.Err, alloc.ErrEmptyOwner) ||
		errors.Is(o.Err, alloc.ErrReservedName) ||
		errors.Is(o.Err, alloc.ErrDuplicateOwner) ||
		errors.Is(o.Err, ErrUnsupported)
}

// ShowsLayout reports whether a front end should render the layout after
// reporting this outcome. Layout-affecting commands show it even when they
// fail against the layout (e.g. no space), but not when the input itself was
// rejected.
func (o Outcome) ShowsLayout() bool {
	switch o.Command.Kind {
	case types.KindShow, types.KindCompact, types.KindReset:
		return true
	case types.KindAlloc, types.KindFree:
		return !o.Rejected()
	default:
		return false
	}
}

// Message renders the outcome as one or more lines of user-facing text.
// It returns "" when the outcome has nothing to say (e.g. show).
func (o Outcome) Message(p *message.Printer) string {
	if o.Err != nil {
		return o.errorMessage(p)
	}

	cmd := o.Command
	switch cmd.Kind {
	case types.KindAlloc:
		return p.Sprintf(i18n.Loaded, cmd.Owner, o.Block.Length, o.Block.Offset)
	case types.KindFree:
		return p.Sprintf(i18n.Released, cmd.Owner)
	case types.KindCompact:
		return p.Sprintf(i18n.Compacted)
	case types.KindReset:
		if o.Warning != nil {
			return p.Sprintf(i18n.CapacityWarning, o.Warning.Requested, o.Warning.Used) + "\n" +
				p.Sprintf(i18n.ResetDone, o.Capacity)
		}
		return p.Sprintf(i18n.ResetDone, o.Capacity)
	case types.KindInternal:
		return p.Sprintf(i18n.InternalReport, o.Internal.LargeBlocks) + "\n" +
			p.Sprintf(i18n.InternalNote, o.Internal.Actual)
	case types.KindExternal:
		var sb strings.Builder
		sb.WriteString(p.Sprintf(i18n.ExternalReport, o.External.Free))
		if o.External.Free > 0 {
			sb.WriteString(p.Sprintf(i18n.ExternalExtents, o.External.Extents, o.External.Largest))
		}
		return sb.String()
	case types.KindStats:
		s := o.Stats
		return p.Sprintf(i18n.StatsReport,
			s.AllocCalls, s.AllocFailures, s.ExactFits, s.Splits,
			s.FreeCalls, s.Merges, s.CompactCalls, s.BlocksMoved)
	case types.KindHelp:
		return p.Sprintf(i18n.HelpText)
	case types.KindExit:
		return p.Sprintf(i18n.Exiting)
	default:
		return ""
	}
}

func (o Outcome) errorMessage(p *message.Printer) string {
	cmd := o.Command
	var verr *verify.ValidationError

	switch {
	case errors.Is(o.Err, alloc.ErrInvalidSize):
		return p.Sprintf(i18n.ErrInvalidSize, cmd.Size)
	case errors.Is(o.Err, alloc.ErrEmptyOwner):
		return p.Sprintf(i18n.ErrEmptyOwner)
	case errors.Is(o.Err, alloc.ErrReservedName):
		if cmd.Kind == types.KindFree {
			return p.Sprintf(i18n.ErrReservedFree, alloc.FreeOwner)
		}
		return p.Sprintf(i18n.ErrReservedOwner, alloc.FreeOwner)
	case errors.Is(o.Err, alloc.ErrDuplicateOwner):
		return p.Sprintf(i18n.ErrDuplicateOwner, cmd.Owner)
	case errors.Is(o.Err, alloc.ErrInsufficientSpace):
		return p.Sprintf(i18n.ErrNoSpace, cmd.Owner, cmd.Size)
	case errors.Is(o.Err, alloc.ErrNotFound):
		return p.Sprintf(i18n.ErrNotFound, cmd.Owner)
	case errors.As(o.Err, &verr):
		return p.Sprintf(i18n.ErrInvariant, verr)
	default:
		return o.Err.Error()
	}
}
