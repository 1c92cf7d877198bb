// Package decimal holds the rounding and period conversions shared by the
// projection records.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Precision used when values are stored in projection records.
const (
	CentPlaces = 2
	RatePlaces = 6
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// RoundCents rounds d to currency precision.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// RoundRate rounds a per-unit rate to record precision.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// Annual multiplies a per-month figure by 12.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Monthly divides a per-year figure by 12.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// FractionFromPercent converts 3.5 into 0.035.
func FractionFromPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// PercentFromFraction converts 0.035 into 3.5.
func PercentFromFraction(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}
