package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultHorizonYears is the projection length used when none is given.
const DefaultHorizonYears = 25

// UsageSource records which usage figure produced a Baseline.
type UsageSource string

const (
	UsageFromAnnual  UsageSource = "annual"
	UsageFromMonthly UsageSource = "monthly"
)

// BillingInput holds the raw values a user enters from a utility bill.
// MonthlyUsage and AnnualUsage are optional; a positive AnnualUsage wins.
type BillingInput struct {
	MonthlyDollars decimal.Decimal  `yaml:"monthly_dollars" json:"monthly_dollars"`
	MonthlyUsage   *decimal.Decimal `yaml:"monthly_usage,omitempty" json:"monthly_usage,omitempty"`
	AnnualUsage    *decimal.Decimal `yaml:"annual_usage,omitempty" json:"annual_usage,omitempty"`
}

// Baseline is the normalized price the user pays now.
// RatePerUnit == (MonthlyDollars*12)/AnnualUsage and is never rounded.
type Baseline struct {
	RatePerUnit  decimal.Decimal `json:"rate_per_unit"`
	AnnualUsage  decimal.Decimal `json:"annual_usage"`
	MonthlyUsage decimal.Decimal `json:"monthly_usage"`
	UsageSource  UsageSource     `json:"usage_source"`
}

// IsValid reports whether the baseline can be projected.
func (b Baseline) IsValid() bool {
	return b.RatePerUnit.IsPositive() && b.AnnualUsage.IsPositive()
}

// ProjectionParams are the per-interaction inputs of a projection.
// Growth rates are fractions (0.035 for 3.5%). A non-positive
// ComparisonRate0 means no comparison offer was entered.
type ProjectionParams struct {
	HorizonYears         int             `json:"horizon_years"`
	BaselineGrowthRate   decimal.Decimal `json:"baseline_growth_rate"`
	ComparisonGrowthRate decimal.Decimal `json:"comparison_growth_rate"`
	ComparisonRate0      decimal.Decimal `json:"comparison_rate_0"`
}

// HasComparison reports whether a comparison rate was offered.
func (p ProjectionParams) HasComparison() bool {
	return p.ComparisonRate0.IsPositive()
}

// YearRecord is one projected year. Rates carry 6 decimals, money 2.
type YearRecord struct {
	Year                    int             `json:"year"`
	BaselineRateEscalated   decimal.Decimal `json:"baseline_rate_escalated"`
	ComparisonRateEscalated decimal.Decimal `json:"comparison_rate_escalated"`
	BaselineCost            decimal.Decimal `json:"baseline_cost"`
	ComparisonCost          decimal.Decimal `json:"comparison_cost"`
	AnnualSavings           decimal.Decimal `json:"annual_savings"`
	CumulativeSavings       decimal.Decimal `json:"cumulative_savings"`
}

// Projection is the full year-indexed series for one (Baseline, ProjectionParams) pair.
type Projection struct {
	Baseline Baseline         `json:"baseline"`
	Params   ProjectionParams `json:"params"`
	Records  []YearRecord     `json:"records"`
}

// Len returns the number of projected years.
func (p Projection) Len() int { return len(p.Records) }

// Final returns the last year of the projection, or a zero record when empty.
func (p Projection) Final() YearRecord {
	if len(p.Records) == 0 {
		return YearRecord{}
	}
	return p.Records[len(p.Records)-1]
}

// TotalSavings returns the cumulative savings at the end of the horizon.
func (p Projection) TotalSavings() decimal.Decimal {
	return p.Final().CumulativeSavings
}

// Milestone is an annotated year on the baseline cost line.
type Milestone struct {
	Year        int             `json:"year"`
	Index       int             `json:"index"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
}

// Crossover marks where cumulative savings changes sign.
type Crossover struct {
	// Year (1-based) in which the sign change completes
	Year int `json:"year"`

	// Fraction (0..1) of that year elapsed at the crossover
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Month (1..12) within Year
	Month int `json:"month"`

	// True when savings turn from negative to positive
	BecomesFavorable bool `json:"becomes_favorable"`
}

// Summary holds the headline numbers shown above a projection.
type Summary struct {
	HorizonYears            int             `json:"horizon_years"`
	BaselineGrowthPercent   decimal.Decimal `json:"baseline_growth_percent"`
	ComparisonGrowthPercent decimal.Decimal `json:"comparison_growth_percent"`
	TotalSavings            decimal.Decimal `json:"total_savings"`
	HasComparison           bool            `json:"has_comparison"`
}

// ProjectionReport is everything an output formatter needs.
type ProjectionReport struct {
	Unit          string      `json:"unit"`
	Projection    Projection  `json:"projection"`
	Summary       Summary     `json:"summary"`
	Milestones    []Milestone `json:"milestones"`
	MilestoneStep int         `json:"milestone_step"`
	Crossover     *Crossover  `json:"crossover,omitempty"`
	Assumptions   []string    `json:"assumptions"`
}
