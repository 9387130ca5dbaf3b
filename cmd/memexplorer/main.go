package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/joshuapare/memsim/cmd/memexplorer/logger"
	"github.com/joshuapare/memsim/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	flags := pflag.NewFlagSet("memexplorer", pflag.ContinueOnError)
	debugMode := flags.BoolP("debug", "d", false, "Enable debug logging to ~/.memexplorer/logs/")
	showVersion := flags.BoolP("version", "v", false, "Show version information")
	configPath := flags.StringP("config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	capacity := flags.Int("capacity", 0, "Total memory size in MB")
	lang := flags.String("lang", "", "Message language (en, es)")
	flags.Usage = func() { printHelp(flags) }

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("memexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	// Initialize logger (must be before any logging calls)
	closeLog, err := logger.Init(logger.Options{
		Enabled: *debugMode,
		Level:   slog.LevelDebug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		closeLog = func() error { return nil }
	}
	defer closeLog()

	path, optional := *configPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(afero.NewOsFs(), path, optional)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flags.Changed("capacity") {
		cfg.Capacity = *capacity
	}
	if flags.Changed("lang") {
		cfg.Language = *lang
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting memexplorer", "capacity", cfg.Capacity, "lang", cfg.Language, "debug", *debugMode)

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	logger.Info("memexplorer exited normally")
}

func printHelp(flags *pflag.FlagSet) {
	fmt.Println("memexplorer - Interactive TUI for the first-fit memory simulator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  memexplorer [options]")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Colored memory strip, one color per process")
	fmt.Println("    - Occupancy bar and block table")
	fmt.Println("    - Load (a), free (f), compact (c) and reset (R)")
	fmt.Println("    - Fragmentation reports (i, e) and allocator stats (s)")
	fmt.Println("    - Copy the layout to the clipboard (y)")
	fmt.Println("    - ? shows all keys, q quits")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Print(flags.FlagUsages())
	fmt.Println()
	fmt.Println("For scripts and the numbered menu, use the 'memctl' command instead.")
}
