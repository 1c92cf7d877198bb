package output

import (
	"os"
	"path/filepath"

	"github.com/rateproj/rate-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes report in the named format to a timestamped file
// in dir and returns the paths written. "all" writes csv, markdown and html.
// CSV exports use the savings_<N>yrs.csv name.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if format == "all" {
		var paths []string
		for _, name := range []string{"csv", "markdown", "html"} {
			written, err := GenerateReport(report, name, dir)
			if err != nil {
				return paths, err
			}
			paths = append(paths, written...)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	if f.Name() == "csv" {
		path, err := WriteFormattedTo(f, report, filepath.Join(dir, CSVFilename(report.Projection.Len())))
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	path, err := WriteFormatted(f, report, dir, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a scenario file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
