package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
)

//go:embed templates static
var assets embed.FS

var pageNames = []string{
	"index",
	"login",
	"register",
	"settings",
	"catalog",
	"inventory",
	"recipes/list",
	"recipes/new",
	"recipes/edit",
	"recipes/detail",
}

// Every page is its own template set: layout + the page body + the
// shared partials, so a page can only reference what it declares.
var pages = parsePages()

var partials = template.Must(template.ParseFS(assets, "templates/partials/*.html"))

func parsePages() map[string]*template.Template {
	m := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		m[name] = template.Must(template.ParseFS(
			assets,
			"templates/layout.html",
			"templates/"+name+".html",
			"templates/partials/*.html",
		))
	}
	return m
}

// Render writes a full page. The template is executed into a buffer
// first so a mid-render failure becomes a clean 500 instead of a
// half-written page.
func Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := pages[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render %q: %v", page, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderPartial writes an htmx fragment by partial name.
func RenderPartial(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := partials.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render partial %q: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// StaticHandler serves the embedded stylesheet and assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		log.Fatal("static assets missing from binary:", err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
