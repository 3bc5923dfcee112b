package dashboard

import (
	"embed"
	"html/template"
)

// PageTemplate is the name the board page is registered under
const PageTemplate = "board.html"

//go:embed templates/*.html
var templateFS embed.FS

// Template parses the embedded page templates
func Template() (*template.Template, error) {
	return template.New(PageTemplate).ParseFS(templateFS, "templates/*.html")
}
