// Package renderer turns ledger and position data into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderReport renders the full report: one section per open position with
// its trade detail and cost summary, then the realized profit per instrument.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_positions": "report_positions.md",
		"report_profits":   "report_profits.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderSummary renders only the open position summaries as a single table.
func RenderSummary(r *Report) string {
	return renderTemplate("summary", "summary.md", nil, r)
}

// RenderProfits renders only the realized profit table.
func RenderProfits(r *Report) string {
	return renderTemplate("profits", "report_profits.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q: %v", file, err)
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
