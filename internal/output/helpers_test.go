package output

import (
	"testing"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// buildTestReport runs the reference bill: $120/month for 900 kWh/month,
// 3.5% current growth against a flat $0.09/kWh offer over 25 years.
func buildTestReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	return buildReportWithRate(t, "0.09")
}

func buildReportWithRate(t *testing.T, rate string) *domain.ProjectionReport {
	t.Helper()
	cfg := &domain.Configuration{
		Billing: domain.BillingInput{
			MonthlyDollars: decimal.NewFromInt(120),
			MonthlyUsage:   decPtr("900"),
		},
		Projection: domain.ProjectionInputs{ComparisonRate: decPtr(rate)},
	}
	report, err := calculation.NewEngine().Run(cfg)
	if err != nil {
		t.Fatalf("engine run: %v", err)
	}
	return report
}
