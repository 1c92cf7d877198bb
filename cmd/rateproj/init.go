package main

import (
	"fmt"
	"os"

	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/output"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force, prefs bool

	cmd := &cobra.Command{
		Use:   "init [scenario.yaml]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenario.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return runInit(cmd, path, force, prefs)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scenario file")
	cmd.Flags().BoolVar(&prefs, "prefs", false, "Also write a default preferences file if none exists")
	return cmd
}

func runInit(cmd *cobra.Command, path string, force, prefs bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	example := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(example, path); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote example scenario to %s\n", path)

	if prefs && !config.Exists() {
		if err := config.Save(config.DefaultPreferences()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote preferences to %s\n", config.ConfigPath())
	}
	return nil
}
