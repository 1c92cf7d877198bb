package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds per-user defaults for rateproj.
type Preferences struct {
	Projection ProjectionPrefs `toml:"projection"`
	Output     OutputPrefs     `toml:"output"`
}

// ProjectionPrefs are used wherever a scenario leaves a value blank.
type ProjectionPrefs struct {
	HorizonYears            int      `toml:"horizon_years"`
	BaselineGrowthPercent   *float64 `toml:"baseline_growth_percent,omitempty"`
	ComparisonGrowthPercent *float64 `toml:"comparison_growth_percent,omitempty"`
	Unit                    string   `toml:"unit"`
	MilestoneStep           int      `toml:"milestone_step"`
}

// OutputPrefs holds report settings.
type OutputPrefs struct {
	Format    string `toml:"format"`
	Directory string `toml:"directory,omitempty"`
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Projection: ProjectionPrefs{
			HorizonYears:  25,
			Unit:          "kWh",
			MilestoneStep: 5,
		},
		Output: OutputPrefs{
			Format: "table",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rateproj")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rateproj")
}

// ConfigPath returns the full path to the preferences file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the preferences file, returning defaults if it doesn't exist.
func Load() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing config: %w", err)
	}

	return prefs, nil
}

// Save writes the preferences to disk.
func Save(prefs Preferences) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(prefs)
}

// Exists returns true if a preferences file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
