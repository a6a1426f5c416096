package view

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// Renderer renders named HTML templates loaded from a directory.
type Renderer struct {
	tmpl *template.Template
}

// New parses every *.html file under dir. Returns ErrNoEngine when the
// directory holds no templates, so callers can distinguish "not configured"
// from a render failure.
func New(dir string) (*Renderer, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoEngine, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template registered under name with the given
// variables and returns the result. The output is buffered so a template
// failure never produces partial output.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", ErrNoEngine
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
