package main

import (
	"fmt"
	"os"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/output"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var form config.FormInput

	cmd := &cobra.Command{
		Use:   "export [scenario.yaml]",
		Short: "Write the projection to files (csv by default, or --format all)",
		Example: "  rateproj export scenario.yaml\n" +
			"  rateproj export scenario.yaml --format all --output-dir reports",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts, form)
		},
	}
	addBillFlags(cmd, &form)
	addProjectionFlags(cmd, &form)
	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *globalOptions, form config.FormInput) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = "csv"
	}
	if format != "all" && output.GetFormatterByName(format) == nil {
		return output.UnsupportedFormatError(format)
	}

	cfg, err := loadScenario(args, form, s)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(newLogger(s, cmd.ErrOrStderr()))
	report, err := engine.Run(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	paths, err := output.GenerateReport(report, format, s.OutputDir)
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	return err
}
