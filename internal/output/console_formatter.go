package output

import (
	"bytes"
	"fmt"

	"github.com/rateproj/rate-projector/internal/domain"
)

// SummaryFormatter provides a concise plain-text summary via the formatter interface.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection

	fmt.Fprintln(&buf, "UTILITY RATE PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Current rate: %s\n", BaselineLine(p.Baseline, report.Unit))
	fmt.Fprintf(&buf, "Usage: %s\n", UsageLine(p.Baseline, report.Unit))
	fmt.Fprintln(&buf, Headline(report.Summary))

	if len(p.Records) > 0 {
		first, last := p.Records[0], p.Final()
		fmt.Fprintf(&buf, "Year 1: you pay %s, comparison %s, savings %s\n",
			FormatCurrency(first.BaselineCost), FormatCurrency(first.ComparisonCost), FormatCurrency(first.AnnualSavings))
		fmt.Fprintf(&buf, "Year %d: you pay %s, comparison %s, savings %s\n",
			last.Year, FormatCurrency(last.BaselineCost), FormatCurrency(last.ComparisonCost), FormatCurrency(last.AnnualSavings))
	}
	for _, m := range report.Milestones {
		fmt.Fprintf(&buf, "  Year %d: %s\n", m.Year, MilestoneLabel(m))
	}
	if line := CrossoverLine(report.Crossover); line != "" {
		fmt.Fprintln(&buf, line)
	}
	return buf.Bytes(), nil
}
