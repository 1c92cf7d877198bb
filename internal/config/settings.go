package config

import (
	"fmt"
	"strconv"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Settings is the effective set of defaults after layering preferences and
// environment. Command-line flags are applied on top by the caller.
type Settings struct {
	HorizonYears            int
	BaselineGrowthPercent   decimal.Decimal
	ComparisonGrowthPercent decimal.Decimal
	Unit                    string
	MilestoneStep           int
	Format                  string
	OutputDir               string
	Verbose                 bool
}

// Resolve layers env over prefs over built-in defaults.
func Resolve(prefs Preferences, env EnvOverrides) Settings {
	s := Settings{
		HorizonYears:            domain.DefaultHorizonYears,
		BaselineGrowthPercent:   domain.DefaultBaselineGrowthPercent,
		ComparisonGrowthPercent: domain.DefaultComparisonGrowthPercent,
		Unit:                    domain.DefaultUnit,
		MilestoneStep:           domain.DefaultMilestoneStep,
		Format:                  "table",
		OutputDir:               ".",
	}

	p := prefs.Projection
	if p.HorizonYears > 0 {
		s.HorizonYears = p.HorizonYears
	}
	if p.BaselineGrowthPercent != nil {
		s.BaselineGrowthPercent = decimal.NewFromFloat(*p.BaselineGrowthPercent)
	}
	if p.ComparisonGrowthPercent != nil {
		s.ComparisonGrowthPercent = decimal.NewFromFloat(*p.ComparisonGrowthPercent)
	}
	if p.Unit != "" {
		s.Unit = p.Unit
	}
	if p.MilestoneStep > 0 {
		s.MilestoneStep = p.MilestoneStep
	}
	if prefs.Output.Format != "" {
		s.Format = prefs.Output.Format
	}
	if prefs.Output.Directory != "" {
		s.OutputDir = prefs.Output.Directory
	}

	if env.HorizonYears != nil && *env.HorizonYears > 0 {
		s.HorizonYears = *env.HorizonYears
	}
	if env.BaselineGrowthPercent != nil {
		s.BaselineGrowthPercent = decimal.NewFromFloat(*env.BaselineGrowthPercent)
	}
	if env.ComparisonGrowthPercent != nil {
		s.ComparisonGrowthPercent = decimal.NewFromFloat(*env.ComparisonGrowthPercent)
	}
	if env.Unit != "" {
		s.Unit = env.Unit
	}
	if env.MilestoneStep != nil && *env.MilestoneStep > 0 {
		s.MilestoneStep = *env.MilestoneStep
	}
	if env.Format != "" {
		s.Format = env.Format
	}
	if env.OutputDir != "" {
		s.OutputDir = env.OutputDir
	}
	s.Verbose = env.Verbose
	return s
}

// Validate checks values that came from the preferences file or the
// environment against the same bounds applied to scenario files and flags.
func (s Settings) Validate() error {
	if s.HorizonYears <= 0 || s.HorizonYears > MaxHorizonYears {
		return domain.NewValidationError(domain.CodeInvalidHorizon, FieldHorizonYears,
			fmt.Sprintf("%s must be between 1 and %d, got %d from preferences or environment",
				FieldHorizonYears, MaxHorizonYears, s.HorizonYears))
	}
	return nil
}

// ApplyDefaults fills values the scenario left blank. Values present in the
// scenario are kept.
func (s Settings) ApplyDefaults(cfg *domain.Configuration) {
	if cfg.Projection.HorizonYears == 0 {
		cfg.Projection.HorizonYears = s.HorizonYears
	}
	if cfg.Projection.BaselineGrowthPercent == nil {
		g := s.BaselineGrowthPercent
		cfg.Projection.BaselineGrowthPercent = &g
	}
	if cfg.Projection.ComparisonGrowthPercent == nil {
		g := s.ComparisonGrowthPercent
		cfg.Projection.ComparisonGrowthPercent = &g
	}
	if cfg.Unit == "" {
		cfg.Unit = s.Unit
	}
	if cfg.MilestoneStep == 0 {
		cfg.MilestoneStep = s.MilestoneStep
	}
}

// FormDefaults pre-fills the growth fields of an interactive form.
func (s Settings) FormDefaults() FormInput {
	return FormInput{
		BaselineGrowthPercent:   s.BaselineGrowthPercent.String(),
		ComparisonGrowthPercent: s.ComparisonGrowthPercent.String(),
		HorizonYears:            strconv.Itoa(s.HorizonYears),
	}
}
