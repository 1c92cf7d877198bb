package output

import (
	"bytes"
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
)

// TableFormatter renders the full report for a terminal: title, baseline,
// headline, the year-by-year table, milestones and a savings sparkline.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection

	fmt.Fprintln(&buf, RenderTitle("UTILITY RATE PROJECTION"))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Current rate: %s\n", BaselineLine(p.Baseline, report.Unit))
	fmt.Fprintf(&buf, "Usage:        %s\n", UsageLine(p.Baseline, report.Unit))
	fmt.Fprintln(&buf)

	headline := Headline(report.Summary)
	switch {
	case !report.Summary.HasComparison:
		fmt.Fprintln(&buf, mutedStyle.Render(headline))
	case report.Summary.TotalSavings.IsNegative():
		fmt.Fprintln(&buf, lossStyle.Render(headline))
	default:
		fmt.Fprintln(&buf, gainStyle.Render(headline))
	}
	fmt.Fprintln(&buf)

	rows := make([][]string, 0, len(p.Records))
	for _, r := range p.Records {
		rows = append(rows, DisplayRow(r))
	}
	buf.WriteString(RenderTable(Table{
		Title:   "Year by Year",
		Headers: ColumnHeaders(report.Unit),
		Rows:    rows,
	}))
	fmt.Fprintln(&buf)

	if len(report.Milestones) > 0 {
		fmt.Fprintln(&buf, headerStyle.Render("Milestones (amount you pay now)"))
		for _, m := range report.Milestones {
			fmt.Fprintf(&buf, "  Year %-3d %s/yr  (%s)\n", m.Year, FormatCurrency(m.AnnualCost), MilestoneLabel(m))
		}
		fmt.Fprintln(&buf)
	}

	if line := CrossoverLine(report.Crossover); line != "" {
		fmt.Fprintln(&buf, line)
		fmt.Fprintln(&buf)
	}

	if len(p.Records) > 0 {
		savings := make([]float64, len(p.Records))
		for i, r := range p.Records {
			savings[i] = r.AnnualSavings.InexactFloat64()
		}
		fmt.Fprintf(&buf, "Annual savings trend: %s\n", RenderSparkline(savings))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, headerStyle.Render("Key Assumptions"))
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "  • %s\n", dimStyle.Render(a))
	}
	return buf.Bytes(), nil
}
