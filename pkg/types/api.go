package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// Kind identifies a simulator command.
type Kind int

const (
	KindInvalid  Kind = iota
	KindAlloc         // place a process with first-fit
	KindFree          // release a process and merge free neighbours
	KindCompact       // slide processes to the front
	KindShow          // render the current layout
	KindInternal      // report internal fragmentation
	KindExternal      // report external fragmentation
	KindStats         // report allocator counters
	KindReset         // rebuild the region, optionally with a new capacity
	KindHelp          // list commands
	KindExit          // stop processing
)

var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindAlloc:    "alloc",
	KindFree:     "free",
	KindCompact:  "compact",
	KindShow:     "show",
	KindInternal: "internal",
	KindExternal: "external",
	KindStats:    "stats",
	KindReset:    "reset",
	KindHelp:     "help",
	KindExit:     "exit",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mutates reports whether commands of this kind can change the layout.
func (k Kind) Mutates() bool {
	switch k {
	case KindAlloc, KindFree, KindCompact, KindReset:
		return true
	default:
		return false
	}
}

// Command is one parsed simulator instruction.
type Command struct {
	Kind  Kind
	Owner string // alloc, free
	Size  int    // alloc: units requested; reset: new capacity (0 keeps the current one)
	Line  int    // 1-based source line when parsed from a script, 0 otherwise
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Kind.String())
	switch c.Kind {
	case KindAlloc:
		fmt.Fprintf(&sb, " %s %d", c.Owner, c.Size)
	case KindFree:
		fmt.Fprintf(&sb, " %s", c.Owner)
	case KindReset:
		if c.Size != 0 {
			fmt.Fprintf(&sb, " %d", c.Size)
		}
	}
	return sb.String()
}

// Alloc builds an alloc command.
func Alloc(owner string, size int) Command { return Command{Kind: KindAlloc, Owner: owner, Size: size} }

// Free builds a free command.
func Free(owner string) Command { return Command{Kind: KindFree, Owner: owner} }
