package calculation

import (
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
	money "github.com/rateproj/rate-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MonthlyEquivalent converts an annual figure to its per-month value.
func MonthlyEquivalent(annual decimal.Decimal) decimal.Decimal {
	return money.Monthly(annual)
}

// MilestoneIndices returns zero-based indices of every step-th year plus the
// final year of a horizon. A non-positive step selects only the final year.
func MilestoneIndices(horizon, step int) []int {
	if horizon <= 0 {
		return nil
	}
	var idx []int
	if step > 0 {
		for y := step; y <= horizon; y += step {
			idx = append(idx, y-1)
		}
	}
	if len(idx) == 0 || idx[len(idx)-1] != horizon-1 {
		idx = append(idx, horizon-1)
	}
	return idx
}

// Milestones annotates the baseline cost line at the milestone years with
// the annual cost and its monthly equivalent.
func Milestones(records []domain.YearRecord, step int) []domain.Milestone {
	indices := MilestoneIndices(len(records), step)
	out := make([]domain.Milestone, 0, len(indices))
	for _, i := range indices {
		r := records[i]
		out = append(out, domain.Milestone{
			Year:        r.Year,
			Index:       i,
			AnnualCost:  r.BaselineCost,
			MonthlyCost: MonthlyEquivalent(r.BaselineCost),
		})
	}
	return out
}

// SeriesKey identifies one chart line.
type SeriesKey string

const (
	SeriesSavings    SeriesKey = "annual_savings"
	SeriesBaseline   SeriesKey = "baseline_cost"
	SeriesComparison SeriesKey = "comparison_cost"
)

// SeriesSelection mirrors the chart toggles.
type SeriesSelection struct {
	Savings    bool `json:"savings"`
	Baseline   bool `json:"baseline"`
	Comparison bool `json:"comparison"`
}

// AllSeries selects every line.
func AllSeries() SeriesSelection {
	return SeriesSelection{Savings: true, Baseline: true, Comparison: true}
}

// Dataset is one chart line keyed to ChartSeries.Labels.
type Dataset struct {
	Key    SeriesKey         `json:"key"`
	Label  string            `json:"label"`
	Values []decimal.Decimal `json:"values"`
}

// ChartSeries holds parallel arrays for an external chart renderer.
type ChartSeries struct {
	Labels     []string           `json:"labels"`
	Datasets   []Dataset          `json:"datasets"`
	Milestones []domain.Milestone `json:"milestones"`
}

// BuildChartSeries extracts the selected lines from records.
func BuildChartSeries(records []domain.YearRecord, sel SeriesSelection, milestoneStep int) ChartSeries {
	cs := ChartSeries{Labels: make([]string, len(records))}
	savings := make([]decimal.Decimal, len(records))
	baseline := make([]decimal.Decimal, len(records))
	comparison := make([]decimal.Decimal, len(records))
	for i, r := range records {
		cs.Labels[i] = fmt.Sprintf("Year %d", r.Year)
		savings[i] = r.AnnualSavings
		baseline[i] = r.BaselineCost
		comparison[i] = r.ComparisonCost
	}

	if sel.Savings {
		cs.Datasets = append(cs.Datasets, Dataset{Key: SeriesSavings, Label: "Annual Savings ($/yr)", Values: savings})
	}
	if sel.Baseline {
		cs.Datasets = append(cs.Datasets, Dataset{Key: SeriesBaseline, Label: "Baseline Cost ($/yr)", Values: baseline})
	}
	if sel.Comparison {
		cs.Datasets = append(cs.Datasets, Dataset{Key: SeriesComparison, Label: "Comparison Cost ($/yr)", Values: comparison})
	}
	cs.Milestones = Milestones(records, milestoneStep)
	return cs
}
