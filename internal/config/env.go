package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvOverrides are RATEPROJ_* environment settings. Unset values stay nil.
type EnvOverrides struct {
	HorizonYears            *int     `env:"RATEPROJ_HORIZON_YEARS"`
	BaselineGrowthPercent   *float64 `env:"RATEPROJ_BASELINE_GROWTH"`
	ComparisonGrowthPercent *float64 `env:"RATEPROJ_COMPARISON_GROWTH"`
	Unit                    string   `env:"RATEPROJ_UNIT"`
	MilestoneStep           *int     `env:"RATEPROJ_MILESTONE_STEP"`
	Format                  string   `env:"RATEPROJ_FORMAT"`
	OutputDir               string   `env:"RATEPROJ_OUTPUT_DIR"`
	Verbose                 bool     `env:"RATEPROJ_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadEnvOverrides reads .env (if present) and then the RATEPROJ_* variables.
func LoadEnvOverrides(dotenvFiles ...string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := LoadDotEnv(dotenvFiles...); err != nil {
		return o, err
	}
	if err := ParseEnv(&o); err != nil {
		return o, err
	}
	return o, nil
}
