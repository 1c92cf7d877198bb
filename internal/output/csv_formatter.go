package output

import (
	"fmt"
	"strings"

	"github.com/rateproj/rate-projector/internal/domain"
)

// CSVExporter writes one row per projected year. Every field is quoted,
// embedded quotes are doubled and rows are joined with CRLF.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return EncodeCSV(report.Unit, report.Projection.Records), nil
}

// EncodeCSV renders records with the header for unit.
func EncodeCSV(unit string, records []domain.YearRecord) []byte {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvLine(ColumnHeaders(unit)))
	for _, r := range records {
		lines = append(lines, csvLine(RawRow(r)))
	}
	return []byte(strings.Join(lines, "\r\n"))
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// CSVFilename is the default export name for a horizon.
func CSVFilename(horizonYears int) string {
	return fmt.Sprintf("savings_%dyrs.csv", horizonYears)
}
