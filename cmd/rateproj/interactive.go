package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/session"
	"github.com/rateproj/rate-projector/internal/tui"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(opts *globalOptions) *cobra.Command {
	var form config.FormInput

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Live projection that updates as you type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts, form)
		},
	}
	addBillFlags(cmd, &form)
	cmd.Flags().StringVar(&form.ComparisonRate, "comparison", "", "Comparison rate in dollars per unit")
	return cmd
}

// interactiveState starts the session from bill flags when any were given.
func interactiveState(form config.FormInput) (session.State, error) {
	state := session.New()
	if strings.TrimSpace(form.MonthlyDollars+form.MonthlyUsage+form.AnnualUsage) == "" {
		return state, nil
	}
	billing, err := config.ParseBilling(form)
	if err != nil {
		return state, err
	}
	return state.Recalculate(billing)
}

func runInteractive(cmd *cobra.Command, opts *globalOptions, form config.FormInput) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}
	state, err := interactiveState(form)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so verbose logs go to a file.
	var logger calculation.Logger
	if s.Verbose {
		path := filepath.Join(s.OutputDir, "rateproj-debug.log")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating debug log: %w", err)
		}
		defer f.Close()
		logger = newLogger(s, f)
		fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s\n", path)
	}

	model := tui.New(tui.Options{
		Settings:   s,
		State:      state,
		Comparison: form.ComparisonRate,
		Logger:     logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
