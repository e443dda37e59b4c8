// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/davirds/portfolio/internal/projects"
	"github.com/davirds/portfolio/internal/seo"
)

// ContactEmail is published on the home page and in security.txt.
const ContactEmail = "davirds.dev@gmail.com"

// SEO routes.
const (
	RouteRobots      = "/robots.txt"
	RouteSitemap     = "/sitemap.xml"
	RouteSecurityTxt = "/.well-known/security.txt"
)

// SEOHandler serves robots.txt, sitemap.xml and security.txt.
type SEOHandler struct {
	siteURL  string
	isDev    bool
	projects *projects.Catalog
	logger   *slog.Logger
}

// NewSEOHandler creates a new SEO handler. In development crawlers are
// turned away entirely.
func NewSEOHandler(siteURL string, isDev bool, projectCatalog *projects.Catalog, logger *slog.Logger) *SEOHandler {
	return &SEOHandler{
		siteURL:  siteURL,
		isDev:    isDev,
		projects: projectCatalog,
		logger:   logger,
	}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	content := seo.BuildRobots(seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: h.isDev,
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(content))
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	b := seo.NewSitemapBuilder(h.siteURL)
	b.AddHomepage()
	b.AddPath(RoutePsi, seo.ChangeFreqMonthly, "0.8")

	var slugs []string
	for _, c := range h.projects.Categories() {
		slugs = append(slugs, c.Slug)
	}
	b.AddProjectFilters(slugs)

	data, err := b.Build()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build sitemap", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

// SecurityTxt handles GET /.well-known/security.txt.
func (h *SEOHandler) SecurityTxt(w http.ResponseWriter, _ *http.Request) {
	content := seo.BuildSecurityTxt(seo.SecurityTxtConfig{
		Contact:            []string{"mailto:" + ContactEmail},
		PreferredLanguages: "en, pt",
		Canonical:          h.siteURL + RouteSecurityTxt,
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(content))
}
