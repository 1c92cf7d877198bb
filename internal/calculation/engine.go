package calculation

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
)

// Engine runs a saved scenario end to end: normalize the bill, project the
// series and assemble the report consumed by the output formatters.
type Engine struct {
	MilestoneStep int
	Logger        Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		MilestoneStep: domain.DefaultMilestoneStep,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run normalizes the configuration's bill and projects it with the
// configuration's (sanitized) projection inputs.
func (e *Engine) Run(config *domain.Configuration) (*domain.ProjectionReport, error) {
	baseline, err := Normalize(config.Billing)
	if err != nil {
		e.Logger.Warnf("normalize: %v", err)
		return nil, err
	}
	e.Logger.Debugf("baseline rate %s per %s over %s %s/yr (from %s usage)",
		baseline.RatePerUnit.StringFixed(6), config.UnitOrDefault(),
		baseline.AnnualUsage.StringFixed(2), config.UnitOrDefault(), baseline.UsageSource)

	params := config.Projection.Params()
	step := config.MilestoneStep
	if step <= 0 {
		step = e.MilestoneStep
	}
	return e.Report(baseline, params, config.UnitOrDefault(), step)
}

// Report projects an already-normalized baseline and assembles the report.
func (e *Engine) Report(baseline domain.Baseline, params domain.ProjectionParams, unit string, milestoneStep int) (*domain.ProjectionReport, error) {
	projection, err := Project(baseline, params)
	if err != nil {
		e.Logger.Errorf("project: %v", err)
		return nil, fmt.Errorf("projection failed: %w", err)
	}
	return e.Assemble(projection, unit, milestoneStep), nil
}

// Assemble builds the report around a projection computed elsewhere, such as
// one derived from interactive session state.
func (e *Engine) Assemble(projection domain.Projection, unit string, milestoneStep int) *domain.ProjectionReport {
	e.Logger.Infof("projected %d years, cumulative savings %s", projection.Len(), projection.TotalSavings().StringFixed(2))
	report := &domain.ProjectionReport{
		Unit:          unit,
		Projection:    projection,
		Summary:       Summarize(projection),
		Milestones:    Milestones(projection.Records, milestoneStep),
		MilestoneStep: milestoneStep,
		Crossover:     CumulativeCrossover(projection.Records),
		Assumptions:   projection.Params.GenerateAssumptions(unit),
	}
	if report.Crossover != nil {
		e.Logger.Debugf("cumulative savings cross zero in year %d month %d", report.Crossover.Year, report.Crossover.Month)
	}
	return report
}
