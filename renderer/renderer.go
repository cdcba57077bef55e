// Package renderer renders canonical estimates as markdown reports.
//
// The report layout lives in embedded templates: an assembly template per
// report, plus partials it includes. The data they consume are view types
// with every monetary value already formatted (see NewEstimate), so the
// templates stay free of arithmetic.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// EstimateMarkdown renders the full estimate report to a markdown string.
func EstimateMarkdown(e *Estimate) string {
	partials := map[string]string{
		"estimate_header":  "estimate_header.md",
		"estimate_section": "estimate_section.md",
	}
	return renderTemplate("estimate", "estimate.md", partials, e)
}

// renderTemplate renders an assembly template together with its partials.
// Template errors end up in the output rather than as an error value; a
// broken template is a bug, not a runtime condition.
func renderTemplate(name, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}
	tmpl, err := template.New(name).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}
	for partial, file := range partials {
		content, err := templates.ReadFile(file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(partial).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, partial, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
