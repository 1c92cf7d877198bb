package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "rateproj", "config.toml"), ConfigPath())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.False(t, Exists())
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	growth := 4.25
	prefs := DefaultPreferences()
	prefs.Projection.HorizonYears = 30
	prefs.Projection.BaselineGrowthPercent = &growth
	prefs.Output.Format = "csv"

	require.NoError(t, Save(prefs))
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Projection.HorizonYears)
	require.NotNil(t, loaded.Projection.BaselineGrowthPercent)
	assert.InDelta(t, 4.25, *loaded.Projection.BaselineGrowthPercent, 1e-9)
	assert.Nil(t, loaded.Projection.ComparisonGrowthPercent)
	assert.Equal(t, "csv", loaded.Output.Format)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[projection\nhorizon_years = "), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parsing config:"))
}

func TestResolve_Precedence(t *testing.T) {
	prefsGrowth := 5.0
	envGrowth := 2.0
	envHorizon := 10

	prefs := DefaultPreferences()
	prefs.Projection.HorizonYears = 30
	prefs.Projection.BaselineGrowthPercent = &prefsGrowth
	prefs.Projection.Unit = "therm"

	s := Resolve(prefs, EnvOverrides{})
	assert.Equal(t, 30, s.HorizonYears)
	assert.True(t, s.BaselineGrowthPercent.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "therm", s.Unit)
	assert.Equal(t, "table", s.Format)

	s = Resolve(prefs, EnvOverrides{BaselineGrowthPercent: &envGrowth, HorizonYears: &envHorizon, Format: "json", Verbose: true})
	assert.Equal(t, 10, s.HorizonYears)
	assert.True(t, s.BaselineGrowthPercent.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "therm", s.Unit)
	assert.Equal(t, "json", s.Format)
	assert.True(t, s.Verbose)
}

func TestResolve_BuiltInDefaults(t *testing.T) {
	s := Resolve(Preferences{}, EnvOverrides{})
	assert.Equal(t, 25, s.HorizonYears)
	assert.Equal(t, "3.5", s.BaselineGrowthPercent.String())
	assert.True(t, s.ComparisonGrowthPercent.IsZero())
	assert.Equal(t, "kWh", s.Unit)
	assert.Equal(t, 5, s.MilestoneStep)
	assert.Equal(t, "table", s.Format)
	assert.Equal(t, ".", s.OutputDir)

	form := s.FormDefaults()
	assert.Equal(t, "3.5", form.BaselineGrowthPercent)
	assert.Equal(t, "25", form.HorizonYears)
}

func TestSettings_ValidateHorizon(t *testing.T) {
	tooLong := MaxHorizonYears + 400
	maxed := MaxHorizonYears

	tests := []struct {
		name    string
		prefs   Preferences
		env     EnvOverrides
		wantErr bool
	}{
		{name: "defaults", prefs: DefaultPreferences()},
		{name: "env at bound", env: EnvOverrides{HorizonYears: &maxed}},
		{name: "env past bound", env: EnvOverrides{HorizonYears: &tooLong}, wantErr: true},
		{name: "prefs past bound", prefs: Preferences{Projection: ProjectionPrefs{HorizonYears: tooLong}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Resolve(tt.prefs, tt.env).Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, domain.CodeInvalidHorizon, verr.Code)
			assert.Contains(t, err.Error(), "must be between 1 and 100")
		})
	}
}

func TestApplyDefaults_KeepsScenarioValues(t *testing.T) {
	envGrowth := 9.0
	s := Resolve(Preferences{}, EnvOverrides{BaselineGrowthPercent: &envGrowth})

	cfg := NewInputParser().CreateExampleConfiguration()
	cfg.Projection.ComparisonGrowthPercent = nil
	cfg.Unit = ""
	s.ApplyDefaults(cfg)

	assert.Equal(t, "3.5", cfg.Projection.BaselineGrowthPercent.String(), "scenario value wins over settings")
	require.NotNil(t, cfg.Projection.ComparisonGrowthPercent)
	assert.True(t, cfg.Projection.ComparisonGrowthPercent.IsZero())
	assert.Equal(t, "kWh", cfg.Unit)
}
