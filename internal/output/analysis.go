package output

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
)

// Headline is the one-line summary shown above every report.
func Headline(s domain.Summary) string {
	if !s.HasComparison {
		return fmt.Sprintf("Awaiting comparison rate: enter a positive comparison rate to see savings over %d years.", s.HorizonYears)
	}
	return fmt.Sprintf("Cumulative savings over %d years (current growth %s/yr vs comparison growth %s/yr): %s",
		s.HorizonYears,
		FormatPercentage(s.BaselineGrowthPercent),
		FormatPercentage(s.ComparisonGrowthPercent),
		FormatCurrency(s.TotalSavings))
}

// BaselineLine describes the rate the user pays now.
func BaselineLine(b domain.Baseline, unit string) string {
	return fmt.Sprintf("%s per %s (amount you pay now)", FormatRate(b.RatePerUnit), unit)
}

// UsageLine shows monthly and annual usage and which one was entered.
func UsageLine(b domain.Baseline, unit string) string {
	return fmt.Sprintf("%s %s/mo, %s %s/yr (from %s usage)",
		FormatQuantity(b.MonthlyUsage), unit, FormatQuantity(b.AnnualUsage), unit, b.UsageSource)
}

// MilestoneLabel is the "$X/mo" annotation for a milestone year.
func MilestoneLabel(m domain.Milestone) string {
	return FormatCurrency(m.MonthlyCost) + "/mo"
}

// CrossoverLine describes where cumulative savings change sign, or "" if never.
func CrossoverLine(c *domain.Crossover) string {
	if c == nil {
		return ""
	}
	if c.BecomesFavorable {
		return fmt.Sprintf("Comparison rate pays off in year %d, month %d", c.Year, c.Month)
	}
	return fmt.Sprintf("Comparison rate stops paying off in year %d, month %d", c.Year, c.Month)
}
