// Package web holds the page templates rendered by the controllers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page. Each page is registered under its file name,
// e.g. "letting.html", and shares the "header" and "footer" partials.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
