package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/output"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(output.ColorTextMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(output.ColorText)
	accentStyle = lipgloss.NewStyle().Foreground(output.ColorAccent)
	gainStyle   = lipgloss.NewStyle().Foreground(output.ColorGreen)
	lossStyle   = lipgloss.NewStyle().Foreground(output.ColorRed)
	helpStyle   = lipgloss.NewStyle().Foreground(output.ColorTextDim)
)

var fieldLabels = [fieldCount]string{
	"Comparison rate ($/unit)",
	"Current growth (%/yr)",
	"Comparison growth (%/yr)",
	"Horizon (years)",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(output.RenderTitle("UTILITY RATE PROJECTION"))
	b.WriteString("\n\n")

	if m.screen == screenBill {
		if m.billErr != nil {
			b.WriteString(lossStyle.Render("  " + m.billErr.Error()))
			b.WriteString("\n\n")
		}
		if m.billForm != nil {
			b.WriteString(m.billForm.View())
		}
		return b.String()
	}

	if baseline, ok := m.state.Baseline(); ok {
		b.WriteString(labelStyle.Render("  Current rate: "))
		b.WriteString(valueStyle.Render(output.BaselineLine(baseline, m.settings.Unit)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Usage:        "))
		b.WriteString(valueStyle.Render(output.UsageLine(baseline, m.settings.Unit)))
		b.WriteString("\n\n")
	}

	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.cursor(i))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-26s", fieldLabels[i])))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderToggles())
	b.WriteString("\n\n")

	if m.inputErr != nil {
		b.WriteString(lossStyle.Render("  " + m.inputErr.Error()))
		b.WriteString("\n\n")
	}

	if m.report != nil {
		b.WriteString(m.renderReport())
	}

	b.WriteString(helpStyle.Render("  tab/shift+tab move · space toggles a series · ctrl+e edit bill · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) cursor(i int) string {
	if m.focus == i {
		return accentStyle.Render("› ")
	}
	return "  "
}

func (m Model) renderToggles() string {
	toggles := []struct {
		focus int
		label string
		on    bool
	}{
		{toggleSavings, "Annual savings", m.series.Savings},
		{toggleBaseline, "Current cost", m.series.Baseline},
		{toggleComparison, "Comparison cost", m.series.Comparison},
	}

	parts := make([]string, 0, len(toggles))
	for _, t := range toggles {
		box := "[ ]"
		if t.on {
			box = "[x]"
		}
		parts = append(parts, m.cursor(t.focus)+box+" "+t.label)
	}
	return strings.Join(parts, "   ")
}

func (m Model) renderReport() string {
	var b strings.Builder
	r := m.report

	headline := output.Headline(r.Summary)
	switch {
	case !r.Summary.HasComparison:
		b.WriteString(labelStyle.Render("  " + headline))
	case r.Summary.TotalSavings.IsNegative():
		b.WriteString(lossStyle.Render("  " + headline))
	default:
		b.WriteString(gainStyle.Render("  " + headline))
	}
	b.WriteString("\n\n")

	chart := calculation.BuildChartSeries(r.Projection.Records, m.series, r.MilestoneStep)
	for _, ds := range chart.Datasets {
		values := make([]float64, len(ds.Values))
		for i, v := range ds.Values {
			values[i] = v.InexactFloat64()
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-24s ", ds.Label)))
		b.WriteString(output.RenderSparkline(values))
		b.WriteString("\n")
	}
	if len(chart.Datasets) > 0 {
		b.WriteString("\n")
	}

	if len(r.Milestones) > 0 {
		marks := make([]string, 0, len(r.Milestones))
		for _, ms := range r.Milestones {
			marks = append(marks, fmt.Sprintf("Year %d %s", ms.Year, output.MilestoneLabel(ms)))
		}
		b.WriteString(labelStyle.Render("  You pay now: "))
		b.WriteString(valueStyle.Render(strings.Join(marks, " · ")))
		b.WriteString("\n")
	}
	if line := output.CrossoverLine(r.Crossover); line != "" {
		b.WriteString(accentStyle.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(r.Projection.Records))
	for _, rec := range r.Projection.Records {
		rows = append(rows, output.DisplayRow(rec))
	}
	b.WriteString(output.RenderTable(output.Table{
		Headers: output.ColumnHeaders(r.Unit),
		Rows:    rows,
	}))
	b.WriteString("\n")
	return b.String()
}
