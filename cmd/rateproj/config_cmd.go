package main

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  Preferences file: %s\n", config.ConfigPath())
			if config.Exists() {
				fmt.Fprintln(w, "  Status: loaded")
			} else {
				fmt.Fprintln(w, "  Status: using defaults (no preferences file)")
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Projection]")
			fmt.Fprintf(w, "    Horizon:            %d years\n", s.HorizonYears)
			fmt.Fprintf(w, "    Current growth:     %s%%/yr\n", s.BaselineGrowthPercent)
			fmt.Fprintf(w, "    Comparison growth:  %s%%/yr\n", s.ComparisonGrowthPercent)
			fmt.Fprintf(w, "    Unit:               %s\n", s.Unit)
			fmt.Fprintf(w, "    Milestone every:    %d years\n", s.MilestoneStep)
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Output]")
			fmt.Fprintf(w, "    Format:    %s\n", s.Format)
			fmt.Fprintf(w, "    Directory: %s\n", s.OutputDir)
			fmt.Fprintf(w, "    Verbose:   %v\n", s.Verbose)
			return nil
		},
	}
}
