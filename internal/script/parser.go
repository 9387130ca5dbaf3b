// Package script parses simulator command scripts.
//
// A script is a line-oriented text file:
//
//	# comments start with '#' or ';'
//	alloc A 10      (aliases: load, cargar)
//	free A          (aliases: release, liberar)
//	compact
//	show
//	internal
//	external
//	stats
//	reset 128
//	exit
//
// Verbs are case-insensitive. Owner names are single tokens and keep their
// case.
package script

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/memsim/pkg/types"
)

// ParseError reports a malformed script line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
}

var verbs = map[string]types.Kind{
	"alloc":     types.KindAlloc,
	"load":      types.KindAlloc,
	"cargar":    types.KindAlloc,
	"free":      types.KindFree,
	"release":   types.KindFree,
	"liberar":   types.KindFree,
	"compact":   types.KindCompact,
	"compactar": types.KindCompact,
	"show":      types.KindShow,
	"ver":       types.KindShow,
	"internal":  types.KindInternal,
	"external":  types.KindExternal,
	"stats":     types.KindStats,
	"reset":     types.KindReset,
	"help":      types.KindHelp,
	"exit":      types.KindExit,
	"quit":      types.KindExit,
	"salir":     types.KindExit,
}

// Parse decodes and parses a whole script.
func Parse(data []byte) ([]types.Command, error) {
	text, _, err := Decode(data)
	if err != nil {
		return nil, err
	}

	cmds := make([]types.Command, 0, bytes.Count(text, []byte{'\n'})+1)

	scanner := bufio.NewScanner(bytes.NewReader(text))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		if !ok {
			continue
		}
		cmd.Line = lineNo
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return cmds, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) ([]types.Command, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return Parse(data)
}

// ParseLine parses a single command line. ok is false for blank and
// comment lines.
func ParseLine(line string) (cmd types.Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, CommentPrefix) || strings.HasPrefix(line, AltCommentPrefix) {
		return types.Command{}, false, nil
	}

	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])
	kind, known := verbs[verb]
	if !known {
		return types.Command{}, false, fmt.Errorf("unknown command %q", fields[0])
	}
	args := fields[1:]

	cmd = types.Command{Kind: kind}
	switch kind {
	case types.KindAlloc:
		if len(args) != 2 {
			return types.Command{}, false, fmt.Errorf("%s expects <owner> <size>, got %d argument(s)", verb, len(args))
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return types.Command{}, false, fmt.Errorf("invalid size %q", args[1])
		}
		cmd.Owner, cmd.Size = args[0], size

	case types.KindFree:
		if len(args) != 1 {
			return types.Command{}, false, fmt.Errorf("%s expects <owner>, got %d argument(s)", verb, len(args))
		}
		cmd.Owner = args[0]

	case types.KindReset:
		if len(args) > 1 {
			return types.Command{}, false, fmt.Errorf("reset expects at most one capacity, got %d", len(args))
		}
		if len(args) == 1 {
			capacity, err := strconv.Atoi(args[0])
			if err != nil {
				return types.Command{}, false, fmt.Errorf("invalid capacity %q", args[0])
			}
			cmd.Size = capacity
		}

	default:
		if len(args) != 0 {
			return types.Command{}, false, fmt.Errorf("%s takes no arguments", verb)
		}
	}
	return cmd, true, nil
}
