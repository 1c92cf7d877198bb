package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// FormInput holds calculator fields exactly as typed.
type FormInput struct {
	MonthlyDollars          string
	MonthlyUsage            string
	AnnualUsage             string
	ComparisonRate          string
	BaselineGrowthPercent   string
	ComparisonGrowthPercent string
	HorizonYears            string
}

// Field names reported in validation errors.
const (
	FieldMonthlyDollars          = "monthly_dollars"
	FieldMonthlyUsage            = "monthly_usage"
	FieldAnnualUsage             = "annual_usage"
	FieldComparisonRate          = "comparison_rate"
	FieldBaselineGrowthPercent   = "baseline_growth_percent"
	FieldComparisonGrowthPercent = "comparison_growth_percent"
	FieldHorizonYears            = "horizon_years"
)

var numberNoise = strings.NewReplacer("$", "", ",", "", "%", "", " ", "")

// parseOptional returns nil for blank text.
func parseOptional(field, text string) (*decimal.Decimal, error) {
	cleaned := numberNoise.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, domain.NewValidationError(domain.CodeInvalidNumber, field,
			fmt.Sprintf("%s: %q is not a number", field, text))
	}
	return &d, nil
}

// ParseBilling parses the bill fields. A blank bill amount is left at zero
// for the normalizer to reject.
func ParseBilling(f FormInput) (domain.BillingInput, error) {
	var in domain.BillingInput
	dollars, err := parseOptional(FieldMonthlyDollars, f.MonthlyDollars)
	if err != nil {
		return in, err
	}
	if dollars != nil {
		in.MonthlyDollars = *dollars
	}
	if in.MonthlyUsage, err = parseOptional(FieldMonthlyUsage, f.MonthlyUsage); err != nil {
		return in, err
	}
	if in.AnnualUsage, err = parseOptional(FieldAnnualUsage, f.AnnualUsage); err != nil {
		return in, err
	}
	return in, nil
}

// ParseProjectionInputs parses the projection fields without applying defaults.
func ParseProjectionInputs(f FormInput) (domain.ProjectionInputs, error) {
	var pi domain.ProjectionInputs
	var err error
	if pi.ComparisonRate, err = parseOptional(FieldComparisonRate, f.ComparisonRate); err != nil {
		return pi, err
	}
	if pi.BaselineGrowthPercent, err = parseOptional(FieldBaselineGrowthPercent, f.BaselineGrowthPercent); err != nil {
		return pi, err
	}
	if pi.ComparisonGrowthPercent, err = parseOptional(FieldComparisonGrowthPercent, f.ComparisonGrowthPercent); err != nil {
		return pi, err
	}

	horizon := strings.TrimSpace(f.HorizonYears)
	if horizon != "" {
		n, convErr := strconv.Atoi(horizon)
		if convErr != nil {
			return pi, domain.NewValidationError(domain.CodeInvalidNumber, FieldHorizonYears,
				fmt.Sprintf("%s: %q is not a whole number of years", FieldHorizonYears, f.HorizonYears))
		}
		if n <= 0 || n > MaxHorizonYears {
			return pi, domain.NewValidationError(domain.CodeInvalidHorizon, FieldHorizonYears,
				fmt.Sprintf("%s must be between 1 and %d", FieldHorizonYears, MaxHorizonYears))
		}
		pi.HorizonYears = n
	}
	return pi, nil
}

// ParseProjection parses and sanitizes the projection fields: blank baseline
// growth is 3.5% and negative baseline growth is clamped to 0, comparison
// growth defaults to 0 and may be negative, percentages become fractions.
func ParseProjection(f FormInput) (domain.ProjectionParams, error) {
	pi, err := ParseProjectionInputs(f)
	if err != nil {
		return domain.ProjectionParams{}, err
	}
	return pi.Params(), nil
}

// ValidateNumber returns a field validator for interactive forms. Blank text
// is accepted; anything else must parse as a number.
func ValidateNumber(field string) func(string) error {
	return func(text string) error {
		_, err := parseOptional(field, text)
		return err
	}
}
