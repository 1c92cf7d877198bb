package main

import (
	"bytes"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/session"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	form              config.FormInput
	requireComparison bool
	series            []string
}

func newProjectCmd(opts *globalOptions) *cobra.Command {
	po := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "project [scenario.yaml]",
		Short: "Project costs and savings year by year",
		Long: "Project the current rate and a comparison rate over the horizon and print\n" +
			"the result in the selected format. Inputs come from a scenario file, the\n" +
			"flags below, or both (flags win).",
		Example: "  rateproj project --bill 120 --monthly-usage 900 --comparison 0.09\n" +
			"  rateproj project scenario.yaml --format csv\n" +
			"  rateproj project scenario.yaml --format chart --series savings,baseline",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, args, opts, po)
		},
	}
	addBillFlags(cmd, &po.form)
	addProjectionFlags(cmd, &po.form)
	cmd.Flags().BoolVar(&po.requireComparison, "require-comparison", false, "Fail when no comparison rate is given")
	cmd.Flags().StringSliceVar(&po.series, "series", nil, "Chart series to include: savings, baseline, comparison")
	return cmd
}

func runProject(cmd *cobra.Command, args []string, opts *globalOptions, po *projectOptions) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}
	f, err := formatterFor(s.Format, po.series)
	if err != nil {
		return err
	}

	cfg, err := loadScenario(args, po.form, s)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(newLogger(s, cmd.ErrOrStderr()))

	state, err := session.New().Recalculate(cfg.Billing)
	if err != nil {
		return err
	}
	derive := state.Derive
	if po.requireComparison {
		derive = state.DeriveStrict
	}
	projection, err := derive(cfg.Projection.Params())
	if err != nil {
		return err
	}

	report := engine.Assemble(projection, cfg.UnitOrDefault(), cfg.MilestoneStepOrDefault())
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
