package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memsim/internal/i18n"
	"github.com/joshuapare/memsim/pkg/types"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the interactive menu",
		Long: `The repl command runs the numbered menu:

  1. Load process (first-fit)
  2. Free process
  3. Compact memory
  4. Show memory state
  5. Internal fragmentation
  6. External fragmentation
  0. Exit

The total memory size is asked for first unless --capacity is given.

Example:
  memctl repl
  memctl repl --capacity 128 --lang es`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplCmd(cmd)
		},
	}
}

func runReplCmd(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	format, err := layoutFormat()
	if err != nil {
		return err
	}

	c := newConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, format)
	return runRepl(cmd.InOrStdin(), c, cmd.Flags().Changed("capacity"))
}

// runRepl drives the menu until option 0 or end of input.
func runRepl(in io.Reader, c *console, capacityGiven bool) error {
	sc := bufio.NewScanner(in)

	capacity := c.cfg.Capacity
	if !capacityGiven {
		var ok bool
		if capacity, ok = readCapacity(sc, c); !ok {
			return sc.Err()
		}
	}
	c.start(capacity)

	for {
		printMenu(c)
		line, ok := readWord(sc)
		if !ok {
			return sc.Err()
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			c.say(i18n.MenuNotANumber)
			continue
		}

		var cmd types.Command
		switch option {
		case 1:
			c.prompt(i18n.OwnerPrompt)
			owner, ok := readWord(sc)
			if !ok {
				return sc.Err()
			}
			c.prompt(i18n.SizePrompt)
			sizeText, ok := readWord(sc)
			if !ok {
				return sc.Err()
			}
			size, err := strconv.Atoi(sizeText)
			if err != nil || size <= 0 {
				c.say(i18n.SizeRejected)
				continue
			}
			cmd = types.Alloc(owner, size)
		case 2:
			c.prompt(i18n.FreePrompt)
			owner, ok := readWord(sc)
			if !ok {
				return sc.Err()
			}
			cmd = types.Free(owner)
		case 3:
			cmd = types.Command{Kind: types.KindCompact}
		case 4:
			cmd = types.Command{Kind: types.KindShow}
		case 5:
			cmd = types.Command{Kind: types.KindInternal}
		case 6:
			cmd = types.Command{Kind: types.KindExternal}
		case 0:
			cmd = types.Command{Kind: types.KindExit}
		default:
			c.say(i18n.MenuUnknown)
			continue
		}

		if _, err := c.exec(cmd); err != nil {
			return err
		}
		if cmd.Kind == types.KindExit {
			return nil
		}
	}
}

// readCapacity prompts until a positive integer is entered.
func readCapacity(sc *bufio.Scanner, c *console) (int, bool) {
	c.prompt(i18n.CapacityPrompt)
	for {
		line, ok := readWord(sc)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(line); err == nil && n > 0 {
			return n, true
		}
		c.prompt(i18n.CapacityInvalid)
	}
}

func printMenu(c *console) {
	c.say("")
	for _, key := range []string{
		i18n.MenuTitle,
		i18n.MenuLoad,
		i18n.MenuFree,
		i18n.MenuCompact,
		i18n.MenuShow,
		i18n.MenuInternal,
		i18n.MenuExternal,
		i18n.MenuExit,
	} {
		c.say(key)
	}
	c.prompt(i18n.MenuPrompt)
}

// readWord returns the first whitespace-separated word of the next input
// line; the rest of the line is discarded.
func readWord(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}
