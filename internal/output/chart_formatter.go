package output

import (
	"encoding/json"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/domain"
)

// ChartFormatter emits chart datasets for an external renderer. A nil
// Series selects every line.
type ChartFormatter struct {
	Series *calculation.SeriesSelection
}

func (c ChartFormatter) Name() string { return "chart" }

// ChartDocument is the JSON shape consumed by chart renderers.
type ChartDocument struct {
	Labels     []string         `json:"labels"`
	Datasets   []ChartDataset   `json:"datasets"`
	Milestones []ChartMilestone `json:"milestones"`
}

// ChartDataset is one line of the chart.
type ChartDataset struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ChartMilestone is a labelled point on the baseline cost line.
type ChartMilestone struct {
	Year    int     `json:"year"`
	Index   int     `json:"index"`
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
	Label   string  `json:"label"`
}

// BuildChartDocument converts a report into chart datasets.
func BuildChartDocument(report *domain.ProjectionReport, sel calculation.SeriesSelection) ChartDocument {
	cs := calculation.BuildChartSeries(report.Projection.Records, sel, report.MilestoneStep)
	doc := ChartDocument{
		Labels:     cs.Labels,
		Datasets:   make([]ChartDataset, 0, len(cs.Datasets)),
		Milestones: make([]ChartMilestone, 0, len(cs.Milestones)),
	}
	for _, ds := range cs.Datasets {
		values := make([]float64, len(ds.Values))
		for i, v := range ds.Values {
			values[i] = v.InexactFloat64()
		}
		doc.Datasets = append(doc.Datasets, ChartDataset{Key: string(ds.Key), Label: ds.Label, Values: values})
	}
	for _, m := range cs.Milestones {
		doc.Milestones = append(doc.Milestones, ChartMilestone{
			Year:    m.Year,
			Index:   m.Index,
			Annual:  m.AnnualCost.InexactFloat64(),
			Monthly: m.MonthlyCost.Round(2).InexactFloat64(),
			Label:   MilestoneLabel(m),
		})
	}
	return doc
}

func (c ChartFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	sel := calculation.AllSeries()
	if c.Series != nil {
		sel = *c.Series
	}
	return json.MarshalIndent(BuildChartDocument(report, sel), "", "  ")
}
