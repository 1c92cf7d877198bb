package output

import (
	"strconv"

	"github.com/rateproj/rate-projector/internal/domain"
)

// ColumnCount is the number of columns in the year-by-year table and CSV.
const ColumnCount = 7

// ColumnHeaders returns the year-by-year column names for a usage unit.
func ColumnHeaders(unit string) []string {
	if unit == "" {
		unit = domain.DefaultUnit
	}
	return []string{
		"Year",
		"Baseline $/" + unit,
		"Comparison $/" + unit,
		"Baseline Cost ($/yr)",
		"Comparison Cost ($/yr)",
		"Annual Savings ($/yr)",
		"Cumulative Savings ($)",
	}
}

// DisplayRow formats a record for people: currency symbols and grouping.
func DisplayRow(r domain.YearRecord) []string {
	return []string{
		strconv.Itoa(r.Year),
		FormatRate(r.BaselineRateEscalated),
		FormatRate(r.ComparisonRateEscalated),
		FormatCurrency(r.BaselineCost),
		FormatCurrency(r.ComparisonCost),
		FormatCurrency(r.AnnualSavings),
		FormatCurrency(r.CumulativeSavings),
	}
}

// RawRow formats a record for machines: plain numbers, rates 6dp, money 2dp.
func RawRow(r domain.YearRecord) []string {
	return []string{
		strconv.Itoa(r.Year),
		r.BaselineRateEscalated.StringFixed(6),
		r.ComparisonRateEscalated.StringFixed(6),
		r.BaselineCost.StringFixed(2),
		r.ComparisonCost.StringFixed(2),
		r.AnnualSavings.StringFixed(2),
		r.CumulativeSavings.StringFixed(2),
	}
}
