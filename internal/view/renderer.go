// Package view renders the HTML pages. Every page template is executed on
// its own and then wrapped in the "base" layout.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"order-management/internal/data/entity"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is what every template receives.
type Page struct {
	Title       string
	ContentHTML template.HTML
	// Username is empty for anonymous visitors.
	Username string
	Flashes  []string
	// Errors maps form input names to their message.
	Errors map[string]string
	Data   any
}

type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	t, err := template.New("view").Funcs(template.FuncMap{
		"fieldError": func(errs map[string]string, key string) string {
			return errs[key]
		},
		"statuses": func() []entity.OrderStatus {
			return entity.OrderStatuses
		},
		"date": func(layout string, v interface{ Format(string) string }) string {
			return v.Format(layout)
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: t, log: log}, nil
}

// Render writes page name with the given status. Nothing is written until
// both passes succeed, so a template error still yields a clean 500.
func (v *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	var content bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&content, name, page); err != nil {
		v.fail(w, name, err)
		return
	}
	page.ContentHTML = template.HTML(content.String())

	var out bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&out, "base", page); err != nil {
		v.fail(w, "base", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = out.WriteTo(w)
}

func (v *Renderer) fail(w http.ResponseWriter, name string, err error) {
	v.log.Error("Failed to render template", zap.String("template", name), zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
