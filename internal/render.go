package internal

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed web/templates/*.html
var templatesFS embed.FS

//go:embed web/static
var staticFS embed.FS

// Renderer executes the embedded page and fragment templates. Templates are
// addressed by file name (e.g. "_table.html").
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "web/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render writes the named template as an HTML response. The template is
// executed into a buffer first so an execution error produces a clean 500
// instead of a half-written page.
func (re *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := re.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
