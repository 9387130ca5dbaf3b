package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/memsim/internal/config"
	"github.com/joshuapare/memsim/mem/printer"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool

	// Settings flags; only applied over the config file when set explicitly
	configPath   string
	capacityFlag int
	widthFlag    int
	langFlag     string
	formatFlag   string
	verifyFlag   bool
)

// appFs is the filesystem scripts and config files are read from.
var appFs = afero.NewOsFs()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memctl",
		Short: "Simulate first-fit contiguous memory allocation",
		Long: `memctl simulates a fixed-size memory divided into contiguous blocks.
Processes are placed with first-fit, freed blocks merge with their free
neighbours, and compaction slides every process to the front.

Without a subcommand memctl starts the interactive menu (same as "memctl repl").`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplCmd(cmd)
		},
	}

	// Global flags
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")

	pf.StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	pf.IntVar(&capacityFlag, "capacity", 0, "Total memory size in MB")
	pf.IntVar(&widthFlag, "width", printer.DefaultWidth, "Units per strip line (0 fits the terminal)")
	pf.StringVar(&langFlag, "lang", config.LangEnglish, "Message language (en, es)")
	pf.StringVar(&formatFlag, "format", string(printer.FormatText), "Layout format (text, table)")
	pf.BoolVar(&verifyFlag, "verify", false, "Check layout invariants after every change")

	root.AddCommand(newReplCmd(), newRunCmd(), newConfigCmd(), newVersionCmd())
	return root
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// loadSettings reads the config file and overlays explicitly set flags.
func loadSettings(flags *pflag.FlagSet) (config.Config, error) {
	path, optional := configPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}

	cfg, err := config.Load(appFs, path, optional)
	if err != nil {
		return cfg, err
	}
	printVerbose(os.Stderr, "Config: %s\n", path)

	if flags.Changed("capacity") {
		cfg.Capacity = capacityFlag
	}
	if flags.Changed("width") {
		cfg.Width = widthFlag
	}
	if flags.Changed("lang") {
		cfg.Language = langFlag
	}
	if flags.Changed("verify") {
		cfg.Verify = verifyFlag
	}
	if noColor {
		cfg.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// layoutFormat validates --format.
func layoutFormat() (printer.Format, error) {
	switch f := printer.Format(formatFlag); f {
	case printer.FormatText, printer.FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", formatFlag, printer.FormatText, printer.FormatTable)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(w io.Writer, format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
