package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/memsim/internal/config"
)

var configForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the settings file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective settings to a config file",
		Long: `The init command writes the effective settings (defaults, the current
config file and any flags) to path, or to the default config location.

Example:
  memctl config init
  memctl config init ./memsim.yaml --lang es --width 32`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(cmd, path)
		},
	}
	initCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, path string) error {
	if path == "" {
		return fmt.Errorf("no config directory available; pass a path")
	}

	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.Save(appFs, path, cfg); err != nil {
		return err
	}

	printInfo(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
