package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ParseCSV reads a CSV export back into year records.
func ParseCSV(r io.Reader) ([]domain.YearRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = ColumnCount

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if strings.TrimSpace(header[0]) != "Year" {
		return nil, fmt.Errorf("unexpected first column %q, want \"Year\"", header[0])
	}

	var records []domain.YearRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		rec, err := parseCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseCSVRow(row []string) (domain.YearRecord, error) {
	var rec domain.YearRecord
	year, err := strconv.Atoi(row[0])
	if err != nil {
		return rec, fmt.Errorf("invalid year %q: %w", row[0], err)
	}
	rec.Year = year

	targets := []*decimal.Decimal{
		&rec.BaselineRateEscalated,
		&rec.ComparisonRateEscalated,
		&rec.BaselineCost,
		&rec.ComparisonCost,
		&rec.AnnualSavings,
		&rec.CumulativeSavings,
	}
	for i, dst := range targets {
		d, err := decimal.NewFromString(row[i+1])
		if err != nil {
			return rec, fmt.Errorf("invalid value %q in column %d: %w", row[i+1], i+2, err)
		}
		*dst = d
	}
	return rec, nil
}
