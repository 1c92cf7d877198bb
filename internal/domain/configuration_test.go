package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProjectionInputsParams(t *testing.T) {
	tests := []struct {
		name           string
		inputs         ProjectionInputs
		wantHorizon    int
		wantBaseline   string
		wantComparison string
		wantRate       string
	}{
		{
			name:           "blank inputs use defaults",
			inputs:         ProjectionInputs{},
			wantHorizon:    25,
			wantBaseline:   "0.035",
			wantComparison: "0",
			wantRate:       "0",
		},
		{
			name:           "negative baseline growth clamps to zero",
			inputs:         ProjectionInputs{BaselineGrowthPercent: dec("-2")},
			wantHorizon:    25,
			wantBaseline:   "0",
			wantComparison: "0",
			wantRate:       "0",
		},
		{
			name: "negative comparison growth is kept",
			inputs: ProjectionInputs{
				HorizonYears:            10,
				BaselineGrowthPercent:   dec("4"),
				ComparisonGrowthPercent: dec("-1.5"),
				ComparisonRate:          dec("0.09"),
			},
			wantHorizon:    10,
			wantBaseline:   "0.04",
			wantComparison: "-0.015",
			wantRate:       "0.09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.inputs.Params()
			assert.Equal(t, tt.wantHorizon, p.HorizonYears)
			assert.True(t, p.BaselineGrowthRate.Equal(decimal.RequireFromString(tt.wantBaseline)), "baseline growth %s", p.BaselineGrowthRate)
			assert.True(t, p.ComparisonGrowthRate.Equal(decimal.RequireFromString(tt.wantComparison)), "comparison growth %s", p.ComparisonGrowthRate)
			assert.True(t, p.ComparisonRate0.Equal(decimal.RequireFromString(tt.wantRate)), "comparison rate %s", p.ComparisonRate0)
		})
	}
}

func TestProjectionParamsHasComparison(t *testing.T) {
	assert.False(t, ProjectionParams{}.HasComparison())
	assert.False(t, ProjectionParams{ComparisonRate0: decimal.NewFromInt(-1)}.HasComparison())
	assert.True(t, ProjectionParams{ComparisonRate0: decimal.NewFromFloat(0.09)}.HasComparison())
}

func TestConfigurationDefaults(t *testing.T) {
	cfg := &Configuration{}
	assert.Equal(t, "kWh", cfg.UnitOrDefault())
	assert.Equal(t, 5, cfg.MilestoneStepOrDefault())

	cfg = &Configuration{Unit: "therm", MilestoneStep: 10}
	assert.Equal(t, "therm", cfg.UnitOrDefault())
	assert.Equal(t, 10, cfg.MilestoneStepOrDefault())
}

func TestProjectionHelpers(t *testing.T) {
	var empty Projection
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.TotalSavings().IsZero())

	p := Projection{Records: []YearRecord{
		{Year: 1, CumulativeSavings: decimal.NewFromInt(10)},
		{Year: 2, CumulativeSavings: decimal.NewFromInt(25)},
	}}
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 2, p.Final().Year)
	assert.True(t, p.TotalSavings().Equal(decimal.NewFromInt(25)))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(CodeMissingUsage, "usage", "")
	assert.Equal(t, "usage: missing_usage", err.Error())

	err = NewValidationError(CodeMissingUsage, "usage", "enter usage")
	assert.Equal(t, "enter usage", err.Error())

	pv := &PreconditionViolation{Reason: "no baseline"}
	assert.Equal(t, "precondition violated: no baseline", pv.Error())
}
