// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package projects loads the featured projects shown on the home page and
// renders them per language and category.
package projects

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/davirds/portfolio/internal/util"
)

// PlaceholderImage replaces missing or not-yet-uploaded project images.
const PlaceholderImage = "/placeholder.svg"

// pendingImagePrefix marks image paths that have no uploaded file yet.
const pendingImagePrefix = "/images/projects/"

// FilterAll selects every project.
const FilterAll = "all"

// Language codes a project can be translated into.
const (
	langEnglish    = "en"
	langPortuguese = "pt"
)

// ErrInvalidCatalog is returned when project data fails validation.
var ErrInvalidCatalog = errors.New("invalid project catalog")

// Translation holds the localized text of a project.
type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"` // Markdown
}

// Project is one entry of the catalog file.
type Project struct {
	ID           string                 `json:"id"`
	Category     string                 `json:"category"`
	ImageURL     string                 `json:"image_url"`
	ProjectURL   string                 `json:"project_url"`
	Tech         []string               `json:"tech"`
	Translations map[string]Translation `json:"translations"`
}

// Category is a distinct project category in first-seen order.
type Category struct {
	Name  string
	Label string
	Slug  string
}

// View is a project localized for rendering.
type View struct {
	ID            string
	Category      string
	CategoryLabel string
	Title         string
	Description   template.HTML
	Tech          []string
	Image         string
	URL           string
}

// descriptionPolicy sanitizes rendered Markdown.
var descriptionPolicy = bluemonday.UGCPolicy()

// Catalog holds the loaded projects. It is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	projects   []Project
	categories []Category
	rendered   map[string]map[string]template.HTML // id -> lang -> description

	defaults []byte
	path     string
	logger   *slog.Logger
	md       goldmark.Markdown
}

// New builds a catalog. When path is set the file is read from disk and
// defaults is only used if path is empty.
func New(defaults []byte, path string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		defaults: defaults,
		path:     path,
		logger:   logger,
		md:       goldmark.New(),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the override file, or "" when the embedded data is used.
func (c *Catalog) Path() string {
	return c.path
}

// Reload re-reads the catalog source. On failure the previous catalog is kept.
func (c *Catalog) Reload() error {
	data := c.defaults
	if c.path != "" {
		b, err := os.ReadFile(c.path)
		if err != nil {
			return fmt.Errorf("reading projects file: %w", err)
		}
		data = b
	}

	projects, err := Parse(data)
	if err != nil {
		return err
	}

	rendered := make(map[string]map[string]template.HTML, len(projects))
	for _, p := range projects {
		rendered[p.ID] = make(map[string]template.HTML, len(p.Translations))
		for lang, tr := range p.Translations {
			html, err := c.renderMarkdown(tr.Description)
			if err != nil {
				return fmt.Errorf("rendering %s description (%s): %w", p.ID, lang, err)
			}
			rendered[p.ID][lang] = html
		}
	}

	categories := collectCategories(projects)

	c.mu.Lock()
	c.projects = projects
	c.categories = categories
	c.rendered = rendered
	c.mu.Unlock()

	c.logger.Debug("projects loaded", "count", len(projects), "categories", len(categories))
	return nil
}

// Parse decodes and validates catalog JSON.
func Parse(data []byte) ([]Project, error) {
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(projects))
	for i, p := range projects {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("%w: project %d has no id", ErrInvalidCatalog, i)
		case seen[p.ID]:
			return nil, fmt.Errorf("%w: duplicate project id %q", ErrInvalidCatalog, p.ID)
		case strings.TrimSpace(p.Category) == "":
			return nil, fmt.Errorf("%w: project %q has no category", ErrInvalidCatalog, p.ID)
		case p.Translations[langEnglish].Title == "":
			return nil, fmt.Errorf("%w: project %q has no English title", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = true
	}
	return projects, nil
}

func (c *Catalog) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- sanitized by bluemonday UGC policy
	return template.HTML(descriptionPolicy.SanitizeBytes(buf.Bytes())), nil
}

func collectCategories(projects []Project) []Category {
	var categories []Category
	seen := make(map[string]bool)
	for _, p := range projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, Category{
			Name:  p.Category,
			Label: capitalize(p.Category),
			Slug:  util.Slugify(p.Category),
		})
	}
	return categories
}

// capitalize upper-cases the first letter only ("web" -> "Web").
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Category(nil), c.categories...)
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.projects)
}

// List returns the projects localized to lang. Any language other than pt
// is English. filter is "all", empty, or a category slug or name.
func (c *Catalog) List(lang, filter string) []View {
	if lang != langPortuguese {
		lang = langEnglish
	}
	filter = strings.TrimSpace(filter)

	c.mu.RLock()
	defer c.mu.RUnlock()

	labels := make(map[string]string, len(c.categories))
	slugs := make(map[string]string, len(c.categories))
	for _, cat := range c.categories {
		labels[cat.Name] = cat.Label
		slugs[cat.Name] = cat.Slug
	}

	views := make([]View, 0, len(c.projects))
	for _, p := range c.projects {
		if !matchesFilter(p.Category, slugs[p.Category], filter) {
			continue
		}

		tlang := lang
		tr, ok := p.Translations[tlang]
		if !ok || tr.Title == "" {
			tlang = langEnglish
			tr = p.Translations[tlang]
		}

		views = append(views, View{
			ID:            p.ID,
			Category:      slugs[p.Category],
			CategoryLabel: labels[p.Category],
			Title:         tr.Title,
			Description:   c.rendered[p.ID][tlang],
			Tech:          p.Tech,
			Image:         imageURL(p.ImageURL),
			URL:           p.ProjectURL,
		})
	}
	return views
}

func matchesFilter(name, slug, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return filter == slug || strings.EqualFold(filter, name)
}

// imageURL substitutes the placeholder for empty or pending images.
func imageURL(u string) string {
	if u == "" || strings.HasPrefix(u, pendingImagePrefix) {
		return PlaceholderImage
	}
	return u
}
