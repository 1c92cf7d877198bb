package config

import (
	"errors"
	"testing"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBilling(t *testing.T) {
	in, err := ParseBilling(FormInput{MonthlyDollars: "$1,200.50", MonthlyUsage: " 900 ", AnnualUsage: ""})
	require.NoError(t, err)
	assert.Equal(t, "1200.5", in.MonthlyDollars.String())
	require.NotNil(t, in.MonthlyUsage)
	assert.Equal(t, "900", in.MonthlyUsage.String())
	assert.Nil(t, in.AnnualUsage)

	// Blank bill amount is left for the normalizer
	in, err = ParseBilling(FormInput{AnnualUsage: "7200"})
	require.NoError(t, err)
	assert.True(t, in.MonthlyDollars.IsZero())
}

func TestParseProjection_Defaults(t *testing.T) {
	params, err := ParseProjection(FormInput{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultHorizonYears, params.HorizonYears)
	assert.True(t, params.BaselineGrowthRate.Equal(decimal.NewFromFloat(0.035)))
	assert.True(t, params.ComparisonGrowthRate.IsZero())
	assert.True(t, params.ComparisonRate0.IsZero())
	assert.False(t, params.HasComparison())
}

func TestParseProjection_Sanitizes(t *testing.T) {
	tests := []struct {
		name               string
		form               FormInput
		wantBaselineGrowth string
		wantCompGrowth     string
		wantHorizon        int
	}{
		{"negative baseline growth clamps to zero", FormInput{BaselineGrowthPercent: "-2"}, "0", "0", 25},
		{"negative comparison growth kept", FormInput{ComparisonGrowthPercent: "-1.5"}, "0.035", "-0.015", 25},
		{"percent sign accepted", FormInput{BaselineGrowthPercent: "4%", ComparisonGrowthPercent: "1%"}, "0.04", "0.01", 25},
		{"explicit horizon", FormInput{HorizonYears: "30"}, "0.035", "0", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseProjection(tt.form)
			require.NoError(t, err)
			assert.True(t, params.BaselineGrowthRate.Equal(decimal.RequireFromString(tt.wantBaselineGrowth)), "baseline growth %s", params.BaselineGrowthRate)
			assert.True(t, params.ComparisonGrowthRate.Equal(decimal.RequireFromString(tt.wantCompGrowth)), "comparison growth %s", params.ComparisonGrowthRate)
			assert.Equal(t, tt.wantHorizon, params.HorizonYears)
		})
	}
}

// parseFields runs the bill and projection parsers the way the CLI does.
func parseFields(f FormInput) error {
	if _, err := ParseBilling(f); err != nil {
		return err
	}
	_, err := ParseProjection(f)
	return err
}

func TestParseFields_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name      string
		form      FormInput
		wantField string
		wantCode  string
	}{
		{"bill", FormInput{MonthlyDollars: "abc"}, FieldMonthlyDollars, domain.CodeInvalidNumber},
		{"monthly usage", FormInput{MonthlyDollars: "120", MonthlyUsage: "lots"}, FieldMonthlyUsage, domain.CodeInvalidNumber},
		{"annual usage", FormInput{MonthlyDollars: "120", AnnualUsage: "1.2.3"}, FieldAnnualUsage, domain.CodeInvalidNumber},
		{"comparison rate", FormInput{ComparisonRate: "cheap"}, FieldComparisonRate, domain.CodeInvalidNumber},
		{"baseline growth", FormInput{BaselineGrowthPercent: "x"}, FieldBaselineGrowthPercent, domain.CodeInvalidNumber},
		{"comparison growth", FormInput{ComparisonGrowthPercent: "--1"}, FieldComparisonGrowthPercent, domain.CodeInvalidNumber},
		{"fractional horizon", FormInput{HorizonYears: "2.5"}, FieldHorizonYears, domain.CodeInvalidNumber},
		{"zero horizon", FormInput{HorizonYears: "0"}, FieldHorizonYears, domain.CodeInvalidHorizon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseFields(tt.form)
			require.Error(t, err)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Contains(t, verr.Error(), tt.wantField)
		})
	}
}

func TestParseFields_Complete(t *testing.T) {
	form := FormInput{
		MonthlyDollars:          "120",
		MonthlyUsage:            "900",
		ComparisonRate:          "0.09",
		BaselineGrowthPercent:   "3.5",
		ComparisonGrowthPercent: "0",
	}
	billing, err := ParseBilling(form)
	require.NoError(t, err)
	params, err := ParseProjection(form)
	require.NoError(t, err)
	assert.True(t, billing.MonthlyDollars.Equal(decimal.NewFromInt(120)))
	assert.True(t, params.HasComparison())
	assert.True(t, params.ComparisonRate0.Equal(decimal.NewFromFloat(0.09)))
}

func TestValidateNumber(t *testing.T) {
	validate := ValidateNumber(FieldMonthlyUsage)
	assert.NoError(t, validate(""))
	assert.NoError(t, validate("1,200"))

	err := validate("many")
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldMonthlyUsage, verr.Field)
}
