package calculation

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
	money "github.com/rateproj/rate-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// factorPlaces bounds the precision of the running growth factors so each
// year costs the same regardless of horizon.
const factorPlaces = 20

func compound(factor, step decimal.Decimal) decimal.Decimal {
	return factor.Mul(step).Round(factorPlaces)
}

// Project computes the year-by-year cost and savings series.
//
// Year 1 uses the unescalated rates; growth compounds from year 2. Rates are
// rounded to 6 places and money to cents before they are stored, and the
// cumulative column is the running sum of the stored (rounded) annual
// savings. Calling Project twice with the same arguments yields identical
// records.
//
// A baseline with a non-positive rate or usage, or a non-positive horizon,
// is a caller bug and is reported as *domain.PreconditionViolation.
func Project(baseline domain.Baseline, params domain.ProjectionParams) (domain.Projection, error) {
	if !baseline.IsValid() {
		return domain.Projection{}, &domain.PreconditionViolation{
			Reason: fmt.Sprintf("baseline rate %s and usage %s must both be positive", baseline.RatePerUnit, baseline.AnnualUsage),
		}
	}
	if params.HorizonYears <= 0 {
		return domain.Projection{}, &domain.PreconditionViolation{
			Reason: fmt.Sprintf("horizon must be at least one year, got %d", params.HorizonYears),
		}
	}

	baselineStep := one.Add(params.BaselineGrowthRate)
	comparisonStep := one.Add(params.ComparisonGrowthRate)
	hasComparison := params.HasComparison()

	records := make([]domain.YearRecord, 0, params.HorizonYears)
	baselineFactor := one
	comparisonFactor := one
	cumulative := decimal.Zero

	for y := 1; y <= params.HorizonYears; y++ {
		if y > 1 {
			baselineFactor = compound(baselineFactor, baselineStep)
			comparisonFactor = compound(comparisonFactor, comparisonStep)
		}

		baselineRate := baseline.RatePerUnit.Mul(baselineFactor)
		comparisonRate := decimal.Zero
		if hasComparison {
			comparisonRate = params.ComparisonRate0.Mul(comparisonFactor)
		}

		baselineCost := baselineRate.Mul(baseline.AnnualUsage)
		comparisonCost := comparisonRate.Mul(baseline.AnnualUsage)
		savings := money.RoundCents(baselineCost.Sub(comparisonCost))

		cumulative = cumulative.Add(savings)

		records = append(records, domain.YearRecord{
			Year:                    y,
			BaselineRateEscalated:   money.RoundRate(baselineRate),
			ComparisonRateEscalated: money.RoundRate(comparisonRate),
			BaselineCost:            money.RoundCents(baselineCost),
			ComparisonCost:          money.RoundCents(comparisonCost),
			AnnualSavings:           savings,
			CumulativeSavings:       cumulative,
		})
	}

	return domain.Projection{Baseline: baseline, Params: params, Records: records}, nil
}
