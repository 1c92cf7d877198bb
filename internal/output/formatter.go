package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rateproj/rate-projector/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ProjectionReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file
// with extension ext inside dir.
func WriteFormatted(f Formatter, report *domain.ProjectionReport, dir, ext string) (string, error) {
	filename := fmt.Sprintf("rate_projection_%s.%s", nowFunc().Format("20060102_150405"), ext)
	return WriteFormattedTo(f, report, filepath.Join(dir, filename))
}

// WriteFormattedTo runs a formatter and writes output to path.
func WriteFormattedTo(f Formatter, report *domain.ProjectionReport, path string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TableFormatter{},
	SummaryFormatter{},
	CSVExporter{},
	JSONFormatter{},
	ChartFormatter{},
	MarkdownFormatter{},
	HTMLFormatter{},
}

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"table":    "txt",
	"summary":  "txt",
	"csv":      "csv",
	"json":     "json",
	"chart":    "json",
	"markdown": "md",
	"html":     "html",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// Extension returns the file extension for a format name, "txt" if unknown.
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console":         "table",
	"console-verbose": "table",
	"verbose":         "table",
	"console-lite":    "summary",
	"lite":            "summary",
	"text":            "summary",
	"chart-json":      "chart",
	"datasets":        "chart",
	"md":              "markdown",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the known names.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
