package main

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/output"
	"github.com/rateproj/rate-projector/internal/session"
	"github.com/spf13/cobra"
)

func newCalculateCmd(opts *globalOptions) *cobra.Command {
	var form config.FormInput

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Normalize a bill to the rate you pay now",
		Example: "  rateproj calculate --bill 120 --monthly-usage 900\n" +
			"  rateproj calculate --bill 95.50 --annual-usage 7200",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, opts, form)
		},
	}
	addBillFlags(cmd, &form)
	return cmd
}

func runCalculate(cmd *cobra.Command, opts *globalOptions, form config.FormInput) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}

	billing, err := config.ParseBilling(form)
	if err != nil {
		return err
	}
	state, err := session.New().Recalculate(billing)
	if err != nil {
		return err
	}
	baseline, _ := state.Baseline()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Current rate: %s\n", output.BaselineLine(baseline, s.Unit))
	fmt.Fprintf(w, "Usage:        %s\n", output.UsageLine(baseline, s.Unit))
	return nil
}
