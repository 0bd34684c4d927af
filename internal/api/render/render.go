// Package render serves the application's server-rendered pages. The markup
// is deliberately plain: presentation is a collaborator of the core flows,
// not part of them.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Data is the bag handed to a page template.
type Data map[string]interface{}

type Renderer struct {
	pages map[string]*template.Template
}

// pageNames lists every page template; each is parsed together with the
// shared layout.
var pageNames = []string{
	"home", "about", "login", "profile",
	"wizard_step_one", "wizard_step_two", "wizard_step_three", "wizard_step_four",
	"dashboard", "reports_index", "report_form",
	"workers_index", "worker_reports", "users_index", "user_form",
	"roles_index", "role_form",
	"workstations_index", "workstation_form",
	"status_form",
}

func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// HTML renders a page into the response. Render failures surface as a 500;
// the page buffer is only flushed when execution succeeded so a partial
// body is never written.
func (rn *Renderer) HTML(w http.ResponseWriter, status int, page string, data Data) {
	tmpl, ok := rn.pages[page]
	if !ok {
		log.Printf("ERROR [render] unknown page %q", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = Data{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("ERROR [render] execute %q: %v", page, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
