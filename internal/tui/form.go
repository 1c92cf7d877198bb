package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rateproj/rate-projector/internal/config"
)

// newBillForm builds the calculator form for the bill fields. Values are
// written through vals, which must outlive the form.
func newBillForm(vals *config.FormInput, unit string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly bill ($)").
				Description("What a typical month costs you now.").
				Placeholder("120").
				Value(&vals.MonthlyDollars).
				Validate(config.ValidateNumber(config.FieldMonthlyDollars)),

			huh.NewInput().
				Title(fmt.Sprintf("Monthly usage (%s)", unit)).
				Placeholder("900").
				Value(&vals.MonthlyUsage).
				Validate(config.ValidateNumber(config.FieldMonthlyUsage)),

			huh.NewInput().
				Title(fmt.Sprintf("Annual usage (%s)", unit)).
				Description("Optional. Used instead of monthly usage when given.").
				Placeholder("10800").
				Value(&vals.AnnualUsage).
				Validate(config.ValidateNumber(config.FieldAnnualUsage)),
		).Title("Your current bill"),
	).WithShowHelp(true)
}
