package output

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page from the Markdown report,
// with the chart datasets embedded for a client-side renderer.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Utility Rate Projection</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 72rem; }
table { border-collapse: collapse; }
th, td { padding: 0.25rem 0.75rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
{{.Body}}
<script>window.rateprojChart = {{.Chart}};</script>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownRenderer.Convert(md, &body); err != nil {
		return nil, err
	}

	chart, err := json.Marshal(BuildChartDocument(report, calculation.AllSeries()))
	if err != nil {
		return nil, err
	}

	data := struct {
		Body  template.HTML
		Chart template.JS
	}{template.HTML(body.String()), template.JS(chart)}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
