package config

import (
	"fmt"
	"os"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxHorizonYears bounds the projection length accepted from files and flags.
const MaxHorizonYears = 100

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a scenario document.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateBilling(&config.Billing); err != nil {
		return fmt.Errorf("billing validation failed: %w", err)
	}
	if err := ip.validateProjection(&config.Projection); err != nil {
		return fmt.Errorf("projection validation failed: %w", err)
	}
	if config.MilestoneStep < 0 {
		return fmt.Errorf("milestone step cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateBilling(b *domain.BillingInput) error {
	if !b.MonthlyDollars.IsPositive() {
		return domain.NewValidationError(domain.CodeInvalidBillAmount, "monthly_dollars", "monthly_dollars must be positive")
	}
	annualOK := b.AnnualUsage != nil && b.AnnualUsage.IsPositive()
	monthlyOK := b.MonthlyUsage != nil && b.MonthlyUsage.IsPositive()
	if !annualOK && !monthlyOK {
		return domain.NewValidationError(domain.CodeMissingUsage, "usage", "either monthly_usage or annual_usage must be positive")
	}
	return nil
}

func (ip *InputParser) validateProjection(p *domain.ProjectionInputs) error {
	if p.HorizonYears < 0 || p.HorizonYears > MaxHorizonYears {
		return domain.NewValidationError(domain.CodeInvalidHorizon, "horizon_years",
			fmt.Sprintf("horizon_years must be between 1 and %d", MaxHorizonYears))
	}
	if p.ComparisonGrowthPercent != nil && p.ComparisonGrowthPercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("comparison growth cannot be -100%% or lower")
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	usage := decimal.NewFromInt(900)
	growth := domain.DefaultBaselineGrowthPercent
	comparisonGrowth := decimal.Zero
	rate := decimal.NewFromFloat(0.09)

	return &domain.Configuration{
		Billing: domain.BillingInput{
			MonthlyDollars: decimal.NewFromInt(120),
			MonthlyUsage:   &usage,
		},
		Projection: domain.ProjectionInputs{
			HorizonYears:            domain.DefaultHorizonYears,
			BaselineGrowthPercent:   &growth,
			ComparisonGrowthPercent: &comparisonGrowth,
			ComparisonRate:          &rate,
		},
		Unit:          domain.DefaultUnit,
		MilestoneStep: domain.DefaultMilestoneStep,
	}
}
