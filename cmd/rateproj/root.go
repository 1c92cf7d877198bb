package main

import (
	"io"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose   bool
	format    string
	outputDir string
	envFile   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "rateproj",
		Short: "Utility rate projection calculator",
		Long: "Normalize a utility bill to a per-unit rate, escalate it over the years and\n" +
			"compare it with a fixed or escalating comparison rate.",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log calculation steps to stderr")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "Output format (see `rateproj formats`)")
	root.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for exported files")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional .env file with RATEPROJ_* settings")

	root.AddCommand(
		newCalculateCmd(opts),
		newProjectCmd(opts),
		newExportCmd(opts),
		newInteractiveCmd(opts),
		newInitCmd(),
		newFormatsCmd(),
		newConfigCmd(opts),
	)
	return root
}

// settings resolves built-in defaults, the preferences file, the environment
// and finally the persistent flags.
func (o *globalOptions) settings() (config.Settings, error) {
	prefs, err := config.Load()
	if err != nil {
		return config.Settings{}, err
	}
	env, err := config.LoadEnvOverrides(o.envFile)
	if err != nil {
		return config.Settings{}, err
	}

	s := config.Resolve(prefs, env)
	if o.format != "" {
		s.Format = o.format
	}
	if o.outputDir != "" {
		s.OutputDir = o.outputDir
	}
	if o.verbose {
		s.Verbose = true
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func newLogger(s config.Settings, w io.Writer) calculation.Logger {
	if !s.Verbose {
		return calculation.NopLogger{}
	}
	return calculation.NewStdLogger(w, calculation.LevelDebug)
}
