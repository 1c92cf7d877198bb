package domain

import (
	"github.com/shopspring/decimal"
)

// Defaults applied to blank boundary inputs.
var (
	DefaultBaselineGrowthPercent   = decimal.NewFromFloat(3.5)
	DefaultComparisonGrowthPercent = decimal.Zero
)

const (
	DefaultUnit          = "kWh"
	DefaultMilestoneStep = 5
)

var hundred = decimal.NewFromInt(100)

// Configuration is a saved scenario: one bill plus one set of projection inputs.
type Configuration struct {
	Billing       BillingInput     `yaml:"billing" json:"billing"`
	Projection    ProjectionInputs `yaml:"projection" json:"projection"`
	Unit          string           `yaml:"unit,omitempty" json:"unit,omitempty"`
	MilestoneStep int              `yaml:"milestone_step,omitempty" json:"milestone_step,omitempty"`
}

// ProjectionInputs are projection settings as a user enters them: growth in
// percent, any field may be left blank.
type ProjectionInputs struct {
	HorizonYears            int              `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`
	BaselineGrowthPercent   *decimal.Decimal `yaml:"baseline_growth_percent,omitempty" json:"baseline_growth_percent,omitempty"`
	ComparisonGrowthPercent *decimal.Decimal `yaml:"comparison_growth_percent,omitempty" json:"comparison_growth_percent,omitempty"`
	ComparisonRate          *decimal.Decimal `yaml:"comparison_rate,omitempty" json:"comparison_rate,omitempty"`
}

// Params sanitizes the inputs into ProjectionParams. Blank baseline growth
// becomes 3.5% and negative baseline growth is clamped to 0; comparison
// growth defaults to 0 and keeps its sign.
func (pi ProjectionInputs) Params() ProjectionParams {
	baselinePct := DefaultBaselineGrowthPercent
	if pi.BaselineGrowthPercent != nil {
		baselinePct = *pi.BaselineGrowthPercent
	}
	if baselinePct.IsNegative() {
		baselinePct = decimal.Zero
	}

	comparisonPct := DefaultComparisonGrowthPercent
	if pi.ComparisonGrowthPercent != nil {
		comparisonPct = *pi.ComparisonGrowthPercent
	}

	rate := decimal.Zero
	if pi.ComparisonRate != nil {
		rate = *pi.ComparisonRate
	}

	horizon := pi.HorizonYears
	if horizon == 0 {
		horizon = DefaultHorizonYears
	}

	return ProjectionParams{
		HorizonYears:         horizon,
		BaselineGrowthRate:   baselinePct.Div(hundred),
		ComparisonGrowthRate: comparisonPct.Div(hundred),
		ComparisonRate0:      rate,
	}
}

// UnitOrDefault returns the usage unit label.
func (c *Configuration) UnitOrDefault() string {
	if c.Unit == "" {
		return DefaultUnit
	}
	return c.Unit
}

// MilestoneStepOrDefault returns the milestone spacing in years.
func (c *Configuration) MilestoneStepOrDefault() int {
	if c.MilestoneStep <= 0 {
		return DefaultMilestoneStep
	}
	return c.MilestoneStep
}
