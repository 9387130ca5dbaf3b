package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memsim/pkg/memsim"
)

var runStrict bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a command script",
		Long: `The run command executes a script of simulator commands, one per line:

  alloc <name> <size>   place a process with first-fit (alias: load, cargar)
  free <name>           release a process (alias: release, liberar)
  compact               slide processes to the front
  show                  print the memory layout
  internal | external   fragmentation reports
  stats                 allocator counters
  reset [size]          start over, optionally with a new size
  exit                  stop

Lines starting with # or ; are comments. The whole script is checked
before the first command runs.

Example:
  memctl run demo.mem
  memctl run demo.mem --capacity 128 --json
  memctl run demo.mem --strict --quiet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			format, err := layoutFormat()
			if err != nil {
				return err
			}
			c := newConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, format)
			return runScript(c, args[0])
		},
	}
	cmd.Flags().BoolVar(&runStrict, "strict", false, "Stop at the first failing command")
	return cmd
}

func runScript(c *console, path string) error {
	printVerbose(c.errOut, "Running script: %s\n", path)

	f, err := appFs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	c.start(c.cfg.Capacity)

	executed, failed := 0, 0
	err = c.session.RunScript(f, func(o memsim.Outcome) error {
		executed++
		if err := c.report(o); err != nil {
			return err
		}
		if !o.OK() {
			failed++
			if runStrict {
				return fmt.Errorf("line %d: %s: %w", o.Command.Line, o.Command, o.Err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	printVerbose(c.errOut, "%d command(s) executed, %d failed\n", executed, failed)
	return nil
}
