// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/davirds/portfolio/internal/offer"
	"github.com/davirds/portfolio/internal/render"
)

// OfferLanguage is the language of the psychologist pages.
const OfferLanguage = "pt"

// PsiData is the template data of the landing page.
type PsiData struct {
	Page offer.Page
}

// AdData is the template data of the sponsored post preview.
type AdData struct {
	Post offer.AdPost
}

// AdImageData is the template data of the image ad previews.
type AdImageData struct {
	Heading  string
	Hint     string
	Creative offer.Creative
	Format   string // CSS class: square or wide
	PNG      string
	Width    int
	Height   int
}

// OfferHandler serves the psychologist landing page and its ad previews.
// These pages are Portuguese only and hide the preference toggles.
type OfferHandler struct {
	renderer  *render.Renderer
	generator *offer.Generator
	logger    *slog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(renderer *render.Renderer, generator *offer.Generator, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		renderer:  renderer,
		generator: generator,
		logger:    logger,
	}
}

// Landing handles GET /psi.
func (h *OfferHandler) Landing(w http.ResponseWriter, r *http.Request) {
	page := offer.LandingPage()
	h.render(w, r, "psi", render.TemplateData{
		Title:       "Landing Pages para Psicólogos",
		Description: page.HeroLead,
		Data:        PsiData{Page: page},
	})
}

// Ad handles GET /psi/ad.
func (h *OfferHandler) Ad(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "psi_ad", render.TemplateData{
		Title: "Prévia do Anúncio",
		Data:  AdData{Post: offer.SponsoredPost()},
	})
}

// AdImage handles GET /psi/ad-image.
func (h *OfferHandler) AdImage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "psi_ad_image", render.TemplateData{
		Title: "Prévia da Imagem",
		Data: AdImageData{
			Heading:  "Prévia da Imagem para Publicação (Versão Final)",
			Hint:     "Abaixo está o gráfico quadrado para você usar no seu feed.",
			Creative: offer.ImageAd(),
			Format:   "square",
			PNG:      RoutePsiAdImagePNG,
			Width:    offer.FormatSquare.Width,
			Height:   offer.FormatSquare.Height,
		},
	})
}

// AdImageWide handles GET /psi/ad-image-16x9.
func (h *OfferHandler) AdImageWide(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "psi_ad_image", render.TemplateData{
		Title: "Prévia da Imagem 16:9",
		Data: AdImageData{
			Heading:  "Prévia da Imagem para Publicação (Formato 16:9)",
			Hint:     "Abaixo está o gráfico horizontal para você usar no seu feed.",
			Creative: offer.ImageAd(),
			Format:   "wide",
			PNG:      RoutePsiAdImageWidePNG,
			Width:    offer.FormatWide.Width,
			Height:   offer.FormatWide.Height,
		},
	})
}

// CreativeSquare handles GET /psi/ad-image.png.
func (h *OfferHandler) CreativeSquare(w http.ResponseWriter, r *http.Request) {
	h.creative(w, r, offer.FormatSquare)
}

// CreativeWide handles GET /psi/ad-image-16x9.png.
func (h *OfferHandler) CreativeWide(w http.ResponseWriter, r *http.Request) {
	h.creative(w, r, offer.FormatWide)
}

func (h *OfferHandler) creative(w http.ResponseWriter, r *http.Request, f offer.Format) {
	data, err := h.generator.Render(f)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render ad creative", "error", err, "format", f.Name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

func (h *OfferHandler) render(w http.ResponseWriter, r *http.Request, name string, data render.TemplateData) {
	data.Lang = OfferLanguage
	if err := h.renderer.Render(w, r, http.StatusOK, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", "error", err, "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
