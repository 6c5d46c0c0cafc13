// Package templates renders the server-side HTML pages. Pages share a base
// layout and are parsed once at startup from the embedded filesystem.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed pages/*.html
var pagesFS embed.FS

var printer = message.NewPrinter(language.English)

var funcs = template.FuncMap{
	"kilograms": FormatKilograms,
	"percent":   FormatPercent,
}

var (
	indexPage       = mustPage("index.html")
	loginPage       = mustPage("login.html")
	identifyPage    = mustPage("identify.html")
	dashboardPage   = mustPage("dashboard.html")
	marketplacePage = mustPage("marketplace.html")
	errorPage       = mustPage("error.html")
)

func mustPage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(pagesFS, "pages/base.html", "pages/"+name))
}

func render(w io.Writer, page *template.Template, view any) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	return page.ExecuteTemplate(w, "base.html", view)
}

// FormatKilograms renders a kilogram figure with digit grouping and one
// decimal place.
func FormatKilograms(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}
