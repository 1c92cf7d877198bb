package output

import (
	"encoding/json"

	"github.com/rateproj/rate-projector/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	doc := struct {
		Headline string `json:"headline"`
		*domain.ProjectionReport
	}{Headline(report.Summary), report}
	return json.MarshalIndent(doc, "", "  ")
}
