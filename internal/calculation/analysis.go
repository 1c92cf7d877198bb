package calculation

import (
	"github.com/rateproj/rate-projector/internal/domain"
	money "github.com/rateproj/rate-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Summarize extracts the headline numbers of a projection.
func Summarize(p domain.Projection) domain.Summary {
	return domain.Summary{
		HorizonYears:            p.Params.HorizonYears,
		BaselineGrowthPercent:   money.PercentFromFraction(p.Params.BaselineGrowthRate),
		ComparisonGrowthPercent: money.PercentFromFraction(p.Params.ComparisonGrowthRate),
		TotalSavings:            p.TotalSavings(),
		HasComparison:           p.Params.HasComparison(),
	}
}

// CumulativeCrossover finds the first year in which cumulative savings
// changes sign, i.e. where the cheaper option over the horizon so far flips.
// The fraction of the year is interpolated linearly from the cumulative
// totals on either side. Returns nil when the sign never changes.
//
// Leading years whose cumulative is exactly zero carry no sign; the first
// non-zero year sets the starting sign. A later year ending on exactly zero
// is reported as a crossover in month 12.
func CumulativeCrossover(records []domain.YearRecord) *domain.Crossover {
	prev := decimal.Zero
	for i, r := range records {
		curr := r.CumulativeSavings
		if i == 0 {
			prev = curr
			continue
		}

		// Lands exactly on zero at year end
		if curr.IsZero() && !prev.IsZero() {
			return &domain.Crossover{
				Year:             r.Year,
				Fraction:         one,
				Month:            12,
				BecomesFavorable: prev.IsNegative(),
			}
		}

		if !prev.IsZero() && prev.Sign() != curr.Sign() {
			// cum(t) = prev + t*(curr-prev); solve cum(t) = 0
			t := prev.Neg().Div(curr.Sub(prev))
			if t.LessThan(decimal.Zero) {
				t = decimal.Zero
			} else if t.GreaterThan(one) {
				t = one
			}
			month := int(t.Mul(twelve).Ceil().IntPart())
			if month < 1 {
				month = 1
			}
			if month > 12 {
				month = 12
			}
			return &domain.Crossover{
				Year:             r.Year,
				Fraction:         t,
				Month:            month,
				BecomesFavorable: curr.IsPositive(),
			}
		}
		prev = curr
	}
	return nil
}
