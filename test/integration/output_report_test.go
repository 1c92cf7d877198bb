package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	report := loadReport(t, "../testdata/example_config.yaml")
	dir := t.TempDir()

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			output.SetNowFunc(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
			defer output.SetNowFunc(time.Now)

			paths, err := output.GenerateReport(report, name, dir)
			require.NoError(t, err)
			require.Len(t, paths, 1)

			data, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	report := loadReport(t, "../testdata/example_config.yaml")

	data, err := output.CSVExporter{}.Format(report)
	require.NoError(t, err)
	assert.Equal(t, 25, strings.Count(string(data), "\r\n"))

	records, err := output.ParseCSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, len(report.Projection.Records))
	for i, got := range records {
		want := report.Projection.Records[i]
		assert.Equal(t, want.Year, got.Year)
		assert.True(t, want.BaselineRateEscalated.Equal(got.BaselineRateEscalated), "year %d baseline rate", want.Year)
		assert.True(t, want.ComparisonRateEscalated.Equal(got.ComparisonRateEscalated), "year %d comparison rate", want.Year)
		assert.True(t, want.BaselineCost.Equal(got.BaselineCost), "year %d baseline cost", want.Year)
		assert.True(t, want.ComparisonCost.Equal(got.ComparisonCost), "year %d comparison cost", want.Year)
		assert.True(t, want.AnnualSavings.Equal(got.AnnualSavings), "year %d savings", want.Year)
		assert.True(t, want.CumulativeSavings.Equal(got.CumulativeSavings), "year %d cumulative", want.Year)
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(), path))
	saved := loadReport(t, path)
	reference := loadReport(t, "../testdata/example_config.yaml")
	assert.True(t, saved.Summary.TotalSavings.Equal(reference.Summary.TotalSavings))
}
