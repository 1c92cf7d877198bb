package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rateproj/rate-projector/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavored Markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection

	fmt.Fprintln(&buf, "# Utility Rate Projection")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, Headline(report.Summary))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "- Current rate: %s\n", BaselineLine(p.Baseline, report.Unit))
	fmt.Fprintf(&buf, "- Usage: %s\n", UsageLine(p.Baseline, report.Unit))
	if line := CrossoverLine(report.Crossover); line != "" {
		fmt.Fprintf(&buf, "- %s\n", line)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Year by Year")
	fmt.Fprintln(&buf)
	writeMarkdownRow(&buf, ColumnHeaders(report.Unit))
	align := make([]string, ColumnCount)
	for i := range align {
		align[i] = "---:"
	}
	writeMarkdownRow(&buf, align)
	for _, r := range p.Records {
		writeMarkdownRow(&buf, DisplayRow(r))
	}
	fmt.Fprintln(&buf)

	if len(report.Milestones) > 0 {
		fmt.Fprintln(&buf, "## Milestones")
		fmt.Fprintln(&buf)
		for _, ms := range report.Milestones {
			fmt.Fprintf(&buf, "- Year %d: %s/yr (%s)\n", ms.Year, FormatCurrency(ms.AnnualCost), MilestoneLabel(ms))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeMarkdownRow(buf *bytes.Buffer, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(buf, "| %s |\n", strings.Join(escaped, " | "))
}
