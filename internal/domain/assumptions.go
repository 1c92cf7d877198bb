package domain

import "fmt"

// GenerateAssumptions creates the assumption lines for a projection from the
// parameters actually used.
func (p ProjectionParams) GenerateAssumptions(unit string) []string {
	lines := []string{
		fmt.Sprintf("Current rate escalation: %s%% per year, compounding from year 2", p.BaselineGrowthRate.Mul(hundred).StringFixed(1)),
	}
	if p.HasComparison() {
		lines = append(lines,
			fmt.Sprintf("Comparison rate: $%s per %s in year 1", p.ComparisonRate0.StringFixed(6), unit),
			fmt.Sprintf("Comparison rate escalation: %s%% per year, compounding from year 2", p.ComparisonGrowthRate.Mul(hundred).StringFixed(1)),
		)
	} else {
		lines = append(lines, "No comparison rate entered: comparison cost is zero in every year")
	}
	lines = append(lines,
		fmt.Sprintf("Usage held constant for all %d years", p.HorizonYears),
		"Taxes and fees are not modeled",
	)
	return lines
}
