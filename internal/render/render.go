// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses the embedded page templates and executes them
// inside the base layout with the visitor's language and theme.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/davirds/portfolio/internal/i18n"
	"github.com/davirds/portfolio/internal/middleware"
	"github.com/davirds/portfolio/internal/uikit"
)

// blankLinesRegex matches two or more consecutive newlines (with optional whitespace between).
var blankLinesRegex = regexp.MustCompile(`(\r?\n\s*){2,}`)

// Renderer handles template rendering with caching.
type Renderer struct {
	templates map[string]*template.Template
	catalog   *i18n.Catalog
	isDev     bool
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	Catalog     *i18n.Catalog
	IsDev       bool
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		catalog:   cfg.Catalog,
		isDev:     cfg.IsDev,
	}

	if err := r.parseTemplates(cfg.TemplatesFS); err != nil {
		return nil, err
	}

	return r, nil
}

// parseTemplates parses every page with the base layout and all partials.
func (r *Renderer) parseTemplates(templatesFS fs.FS) error {
	partials, err := templateFiles(templatesFS, "partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	pages, err := templateFiles(templatesFS, "pages")
	if err != nil {
		return fmt.Errorf("getting pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no page templates found")
	}

	const baseLayout = "layouts/base.html"

	for _, pagePath := range pages {
		name := strings.TrimSuffix(path.Base(pagePath), ".html")

		// Parse in order: base layout, partials, page template
		files := []string{baseLayout}
		files = append(files, partials...)
		files = append(files, pagePath)

		tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	return nil
}

// templateFiles returns all .html files in a directory. A missing directory
// yields no files.
func templateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		return nil, nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			// embed.FS paths always use forward slashes
			files = append(files, path.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// TemplateFuncs returns the uikit helpers plus site-specific functions.
func (r *Renderer) TemplateFuncs() template.FuncMap {
	funcs := uikit.TemplateFuncs()
	funcs["otherLang"] = func(lang string) string {
		if lang == i18n.DefaultLanguage {
			return "pt"
		}
		return i18n.DefaultLanguage
	}
	funcs["isDev"] = func() bool {
		return r.isDev
	}
	funcs["keepLines"] = keepLines
	return funcs
}

// keepLines escapes s with line breaks encoded as character references, so
// blank line compaction leaves textarea values and pre-wrapped copy intact.
func keepLines(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r", "&#13;")
	escaped = strings.ReplaceAll(escaped, "\n", "&#10;")
	return template.HTML(escaped)
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Description string
	Lang        string
	Theme       string
	T           i18n.Localizer
	Path        string // request URI, used to return after preference changes
	ShowToggles bool   // language and theme toggles in the header
	Data        any
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Render renders a page with the given status. Language, theme and the
// localizer are filled from the request's resolved preferences.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	p := middleware.GetPreferences(req.Context())
	if data.Lang == "" {
		data.Lang = p.Language
	}
	if data.Theme == "" {
		data.Theme = p.Theme
	}
	if r.catalog != nil {
		data.T = r.catalog.Translator(data.Lang)
	}
	data.Path = req.URL.RequestURI()

	// Render to buffer first to catch errors
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", data.Lang)
	w.WriteHeader(status)
	_, err := w.Write(blankLinesRegex.ReplaceAll(buf.Bytes(), []byte("\n")))
	return err
}
