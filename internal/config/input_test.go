package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeTemp(t, "billing:\n"+
		"  monthly_dollars: 120\n"+
		"  monthly_usage: 900\n"+
		"projection:\n"+
		"  horizon_years: 20\n"+
		"  baseline_growth_percent: 4\n"+
		"  comparison_growth_percent: -1.5\n"+
		"  comparison_rate: 0.09\n"+
		"unit: kWh\n"+
		"milestone_step: 5\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, config.Billing.MonthlyDollars.Equal(decimal.NewFromInt(120)))
	require.NotNil(t, config.Billing.MonthlyUsage)
	assert.True(t, config.Billing.MonthlyUsage.Equal(decimal.NewFromInt(900)))
	assert.Nil(t, config.Billing.AnnualUsage)
	assert.Equal(t, 20, config.Projection.HorizonYears)
	require.NotNil(t, config.Projection.ComparisonGrowthPercent)
	assert.Equal(t, "-1.5", config.Projection.ComparisonGrowthPercent.String())
	require.NotNil(t, config.Projection.ComparisonRate)
	assert.Equal(t, "0.09", config.Projection.ComparisonRate.String())
	assert.Equal(t, "kWh", config.Unit)
	assert.Equal(t, 5, config.MilestoneStep)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "billing: [unclosed\n")

	config, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromBytes_ValidationFailure(t *testing.T) {
	_, err := NewInputParser().LoadFromBytes([]byte("billing:\n  monthly_dollars: 120\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.CodeMissingUsage, verr.Code)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{name: "example is valid", mutate: func(c *domain.Configuration) {}},
		{
			name:    "zero bill",
			mutate:  func(c *domain.Configuration) { c.Billing.MonthlyDollars = decimal.Zero },
			wantErr: "monthly_dollars must be positive",
		},
		{
			name: "no usage",
			mutate: func(c *domain.Configuration) {
				c.Billing.MonthlyUsage = nil
				c.Billing.AnnualUsage = nil
			},
			wantErr: "either monthly_usage or annual_usage",
		},
		{
			name: "annual usage alone",
			mutate: func(c *domain.Configuration) {
				u := decimal.NewFromInt(7200)
				c.Billing.MonthlyUsage = nil
				c.Billing.AnnualUsage = &u
			},
		},
		{
			name:    "negative horizon",
			mutate:  func(c *domain.Configuration) { c.Projection.HorizonYears = -1 },
			wantErr: "horizon_years must be between",
		},
		{
			name:    "horizon too long",
			mutate:  func(c *domain.Configuration) { c.Projection.HorizonYears = MaxHorizonYears + 1 },
			wantErr: "horizon_years must be between",
		},
		{
			name: "comparison growth of -100%",
			mutate: func(c *domain.Configuration) {
				g := decimal.NewFromInt(-100)
				c.Projection.ComparisonGrowthPercent = &g
			},
			wantErr: "comparison growth cannot be -100%",
		},
		{
			name:    "negative milestone step",
			mutate:  func(c *domain.Configuration) { c.MilestoneStep = -5 },
			wantErr: "milestone step cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parser.CreateExampleConfiguration()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	loaded, err := parser.LoadFromBytes(data)
	require.NoError(t, err)
	assert.True(t, loaded.Billing.MonthlyDollars.Equal(example.Billing.MonthlyDollars))
	assert.True(t, loaded.Projection.ComparisonRate.Equal(*example.Projection.ComparisonRate))
	assert.True(t, loaded.Projection.BaselineGrowthPercent.Equal(*example.Projection.BaselineGrowthPercent))
	assert.Equal(t, example.Projection.HorizonYears, loaded.Projection.HorizonYears)
}
