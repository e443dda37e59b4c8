// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers of the portfolio site.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/davirds/portfolio/internal/contact"
	"github.com/davirds/portfolio/internal/i18n"
	"github.com/davirds/portfolio/internal/middleware"
	"github.com/davirds/portfolio/internal/projects"
	"github.com/davirds/portfolio/internal/render"
	"github.com/davirds/portfolio/internal/util"
)

// ProfileWhatsAppURL is the WhatsApp link in the hero.
const ProfileWhatsAppURL = "https://wa.me/5548988267221"

// Service is one card of the "what I do" section.
type Service struct {
	ID   string
	Key  string // translation key segment: whatIDo.<Key>.title
	Tech []string
}

// Services lists the service cards in display order.
var Services = []Service{
	{ID: "backend-engineering-card", Key: "backendEngineering", Tech: []string{"TypeScript", "Node.js", "PostgreSQL", "APIs"}},
	{ID: "apis-integrations-card", Key: "apisIntegrations", Tech: []string{"REST APIs", "Webhooks", "Integrations", "Node.js"}},
	{ID: "saas-development-card", Key: "saasDevelopment", Tech: []string{"SaaS", "Backend Architecture", "Authentication", "Multi-tenant"}},
	{ID: "automation-card", Key: "automation", Tech: []string{"Automation", "APIs", "n8n", "Python"}},
}

// HomeData is the template data of the home page.
type HomeData struct {
	WhatsAppURL  string
	ContactEmail string
	Services    []Service
	Filter      string
	Categories  []projects.Category
	Projects    []projects.View
	Contact     ContactView
}

// SiteHandler serves the home page and error pages.
type SiteHandler struct {
	renderer *render.Renderer
	catalog  *i18n.Catalog
	projects *projects.Catalog
	forms    *contact.Registry
	logger   *slog.Logger
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(renderer *render.Renderer, catalog *i18n.Catalog, projectCatalog *projects.Catalog, forms *contact.Registry, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		renderer: renderer,
		catalog:  catalog,
		projects: projectCatalog,
		forms:    forms,
		logger:   logger,
	}
}

// Home handles GET /.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetPreferences(ctx).Language
	t := h.catalog.Translator(lang)

	// Hand-typed filters like "Automação" are folded into category slugs
	filter := r.URL.Query().Get("category")
	if !util.IsValidSlug(filter) {
		filter = util.Slugify(filter)
	}
	if filter == "" {
		filter = projects.FilterAll
	}

	state := contact.State{Status: contact.StatusIdle}
	if id := middleware.GetVisitorID(ctx); id != "" {
		state = h.forms.Get(id).State()
	}

	data := HomeData{
		WhatsAppURL:  ProfileWhatsAppURL,
		ContactEmail: ContactEmail,
		Services:     Services,
		Filter:       filter,
		Categories:   h.projects.Categories(),
		Projects:     h.projects.List(lang, filter),
		Contact:      NewContactView(state, t),
	}

	h.render(w, r, http.StatusOK, "home", render.TemplateData{
		Title:       t.T("hero.name"),
		Description: t.T("hero.description"),
		ShowToggles: true,
		Data:        data,
	})
}

// ErrorData is the template data of the error page.
type ErrorData struct {
	Code    int
	Message string
}

// NotFound renders the 404 page.
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "error.notFound")
}

// renderError renders the error page with a translated message.
func (h *SiteHandler) renderError(w http.ResponseWriter, r *http.Request, code int, key string) {
	t := h.catalog.Translator(middleware.GetPreferences(r.Context()).Language)
	msg := t.T(key)
	err := h.renderer.Render(w, r, code, "error", render.TemplateData{
		Title:       msg,
		ShowToggles: true,
		Data:        ErrorData{Code: code, Message: msg},
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render error page", "error", err, "status", code)
		http.Error(w, msg, code)
	}
}

// render renders a page, falling back to the error page on template failure.
func (h *SiteHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data render.TemplateData) {
	if err := h.renderer.Render(w, r, status, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", "error", err, "template", name)
		h.renderError(w, r, http.StatusInternalServerError, "error.server")
	}
}
