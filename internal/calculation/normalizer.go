package calculation

import (
	"github.com/rateproj/rate-projector/internal/domain"
	money "github.com/rateproj/rate-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidBill  = "Please enter the dollar amount of your monthly utility bill."
	msgMissingUsage = "Please enter either monthly usage or annual usage."
)

// Normalize turns a bill amount and a usage figure into a per-unit baseline.
//
// A positive annual usage is authoritative; otherwise monthly usage is
// annualized. Both sides are put in yearly terms before dividing, so the
// rate is the same whichever usage figure was supplied. The rate is stored
// unrounded.
func Normalize(in domain.BillingInput) (domain.Baseline, error) {
	if !in.MonthlyDollars.IsPositive() {
		return domain.Baseline{}, domain.NewValidationError(domain.CodeInvalidBillAmount, "monthly_dollars", msgInvalidBill)
	}

	var annual decimal.Decimal
	var source domain.UsageSource
	switch {
	case in.AnnualUsage != nil && in.AnnualUsage.IsPositive():
		annual = *in.AnnualUsage
		source = domain.UsageFromAnnual
	case in.MonthlyUsage != nil && in.MonthlyUsage.IsPositive():
		annual = money.Annual(*in.MonthlyUsage)
		source = domain.UsageFromMonthly
	default:
		return domain.Baseline{}, domain.NewValidationError(domain.CodeMissingUsage, "usage", msgMissingUsage)
	}

	return domain.Baseline{
		RatePerUnit:  money.Annual(in.MonthlyDollars).Div(annual),
		AnnualUsage:  annual,
		MonthlyUsage: money.Monthly(annual),
		UsageSource:  source,
	}, nil
}
