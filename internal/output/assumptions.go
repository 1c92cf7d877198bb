package output

import "github.com/rateproj/rate-projector/internal/domain"

// DefaultAssumptions lists the modeling assumptions rendered when a report
// carries none of its own.
var DefaultAssumptions = []string{
	"Current rate escalation: 3.5% per year, compounding from year 2",
	"Usage held constant for every projected year",
	"Taxes and fees are not modeled",
}

func reportAssumptions(r *domain.ProjectionReport) []string {
	if len(r.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return r.Assumptions
}
