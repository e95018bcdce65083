// Package views renders the dashboard page from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"dashboard/models"
)

//go:embed gohtml static
var Files embed.FS

type PageName string

const (
	baseTemplatePath     = "gohtml/base.gohtml"
	partialsTemplateGlob = "gohtml/partials/*.gohtml"
)

const (
	Page500  PageName = "500"
	PageHome PageName = "home"
)

const DefaultHeading = "Tech & Business Daily Dashboard"

type Data struct {
	Heading        string
	Widgets        []models.WidgetState
	RefreshSeconds int
}

func NewData(widgets []models.WidgetState) *Data {
	return &Data{Heading: DefaultHeading, Widgets: widgets}
}

type Manager struct {
	PageCache        map[string]*template.Template
	PartialsTemplate *template.Template
}

func NewManager() (*Manager, error) {
	pageCache, err := generateCacheFromGlob(
		"gohtml/pages/*.gohtml",
		func(filePath string) []string {
			return []string{baseTemplatePath, partialsTemplateGlob, filePath}
		},
	)
	if err != nil {
		return nil, err
	}

	partials, err := template.New("base").Funcs(tmplFuncs).ParseFS(Files, partialsTemplateGlob)
	if err != nil {
		return nil, err
	}

	return &Manager{PageCache: pageCache, PartialsTemplate: partials}, nil
}

// StaticFS is the static asset tree, rooted so that "dashboard.css" resolves.
func StaticFS() fs.FS {
	sub, err := fs.Sub(Files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// generateCacheFromGlob builds one template set per file matched by
// globPattern, each set holding that file plus the files from buildTemplateBits.
func generateCacheFromGlob(
	globPattern string,
	buildTemplateBits func(filePath string) []string,
) (map[string]*template.Template, error) {
	filePaths, err := fs.Glob(Files, globPattern)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*template.Template, len(filePaths))
	for _, filePath := range filePaths {
		tmpl, err := template.New("base").Funcs(tmplFuncs).ParseFS(Files, buildTemplateBits(filePath)...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filePath, err)
		}
		result[cacheKeyFromPath(filePath)] = tmpl
	}
	return result, nil
}

func cacheKeyFromPath(filePath string) string {
	return strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
}

func (m *Manager) RenderPage(w io.Writer, pageName PageName, data *Data) error {
	tmpl := m.PageCache[string(pageName)]
	if tmpl == nil {
		return fmt.Errorf("page template %q was not found in cache", pageName)
	}
	return writeTemplate(w, tmpl, "base", data)
}

// RenderPartial renders a single named partial, e.g. "widget" for one card.
func (m *Manager) RenderPartial(w io.Writer, partialName string, data any) error {
	if m.PartialsTemplate.Lookup(partialName) == nil {
		return fmt.Errorf("partial template %q was not found in cache", partialName)
	}
	return writeTemplate(w, m.PartialsTemplate, partialName, data)
}

// writeTemplate renders into a buffer first so a failing template never
// leaves a half-written response.
func writeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
