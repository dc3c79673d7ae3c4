package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/orgball2608/apod-gallery/internal/daterange"
	"github.com/orgball2608/apod-gallery/internal/gallery"
	"github.com/orgball2608/apod-gallery/internal/modal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// RangeData feeds the date inputs.
type RangeData struct {
	Range  daterange.Range
	Bounds daterange.Bounds
}

type PageData struct {
	RangeData
	Fact    string
	Loading gallery.Placeholder
	Gallery gallery.View
	Modal   modal.View
}

// Templates renders pages and fragments. Templates are parsed once.
type Templates struct {
	tmpl *template.Template
}

func New() (*Templates, error) {
	tmpl, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{tmpl: tmpl}, nil
}

func (t *Templates) Page(w io.Writer, data PageData) error {
	return t.tmpl.ExecuteTemplate(w, "page", data)
}

func (t *Templates) Gallery(w io.Writer, v gallery.View) error {
	return t.tmpl.ExecuteTemplate(w, "gallery", v)
}

func (t *Templates) Modal(w io.Writer, v modal.View) error {
	return t.tmpl.ExecuteTemplate(w, "modal", v)
}

func (t *Templates) EndInput(w io.Writer, data RangeData) error {
	return t.tmpl.ExecuteTemplate(w, "end-input", data)
}

// Assets serves the embedded static files.
func Assets() http.Handler {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
