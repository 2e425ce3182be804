// Package web renders server-side HTML pages from embedded templates.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// Page is a template parsed once at startup and rendered with fixed data.
type Page struct {
	tmpl *template.Template
	data any
}

// NewPage parses the named template from fsys. The data is passed to every render.
func NewPage(fsys fs.FS, name string, data any) (*Page, error) {
	tmpl, err := template.ParseFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Page{tmpl: tmpl, data: data}, nil
}

// MustPage is like NewPage but panics if the template cannot be parsed.
func MustPage(fsys fs.FS, name string, data any) *Page {
	p, err := NewPage(fsys, name, data)
	if err != nil {
		panic(err)
	}
	return p
}

// ServeHTTP renders the page. Nothing is written until rendering succeeds.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, p.data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
