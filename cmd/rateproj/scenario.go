package main

import (
	"fmt"
	"strings"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/rateproj/rate-projector/internal/output"
	"github.com/spf13/cobra"
)

func addBillFlags(cmd *cobra.Command, f *config.FormInput) {
	cmd.Flags().StringVar(&f.MonthlyDollars, "bill", "", "Monthly bill in dollars")
	cmd.Flags().StringVar(&f.MonthlyUsage, "monthly-usage", "", "Usage per month")
	cmd.Flags().StringVar(&f.AnnualUsage, "annual-usage", "", "Usage per year (used instead of monthly usage)")
}

func addProjectionFlags(cmd *cobra.Command, f *config.FormInput) {
	cmd.Flags().StringVar(&f.ComparisonRate, "comparison", "", "Comparison rate in dollars per unit")
	cmd.Flags().StringVar(&f.BaselineGrowthPercent, "baseline-growth", "", "Yearly growth of the current rate in percent (default 3.5)")
	cmd.Flags().StringVar(&f.ComparisonGrowthPercent, "comparison-growth", "", "Yearly growth of the comparison rate in percent, may be negative")
	cmd.Flags().StringVar(&f.HorizonYears, "horizon", "", "Years to project (default 25)")
}

// loadScenario builds a configuration from an optional scenario file and the
// command-line fields. Fields given on the command line win over the file and
// anything still blank comes from settings.
func loadScenario(args []string, form config.FormInput, s config.Settings) (*domain.Configuration, error) {
	cfg := &domain.Configuration{}
	if len(args) > 0 {
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	billing, err := config.ParseBilling(form)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(form.MonthlyDollars) != "" {
		cfg.Billing.MonthlyDollars = billing.MonthlyDollars
	}
	if billing.MonthlyUsage != nil {
		cfg.Billing.MonthlyUsage = billing.MonthlyUsage
	}
	if billing.AnnualUsage != nil {
		cfg.Billing.AnnualUsage = billing.AnnualUsage
	}

	pi, err := config.ParseProjectionInputs(form)
	if err != nil {
		return nil, err
	}
	if pi.ComparisonRate != nil {
		cfg.Projection.ComparisonRate = pi.ComparisonRate
	}
	if pi.BaselineGrowthPercent != nil {
		cfg.Projection.BaselineGrowthPercent = pi.BaselineGrowthPercent
	}
	if pi.ComparisonGrowthPercent != nil {
		cfg.Projection.ComparisonGrowthPercent = pi.ComparisonGrowthPercent
	}
	if pi.HorizonYears > 0 {
		cfg.Projection.HorizonYears = pi.HorizonYears
	}

	s.ApplyDefaults(cfg)
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// formatterFor resolves a format name. series narrows the chart datasets.
func formatterFor(name string, series []string) (output.Formatter, error) {
	f := output.GetFormatterByName(name)
	if f == nil {
		return nil, output.UnsupportedFormatError(name)
	}
	if f.Name() != "chart" || len(series) == 0 {
		return f, nil
	}
	sel, err := parseSeries(series)
	if err != nil {
		return nil, err
	}
	return output.ChartFormatter{Series: &sel}, nil
}

func parseSeries(names []string) (calculation.SeriesSelection, error) {
	var sel calculation.SeriesSelection
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "savings":
			sel.Savings = true
		case "baseline":
			sel.Baseline = true
		case "comparison":
			sel.Comparison = true
		default:
			return sel, fmt.Errorf("unknown series %q (want savings, baseline or comparison)", n)
		}
	}
	return sel, nil
}
