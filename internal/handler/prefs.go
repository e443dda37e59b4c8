// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/davirds/portfolio/internal/prefs"
)

// PrefsHandler changes the visitor's language and theme.
type PrefsHandler struct {
	logger *slog.Logger
}

// NewPrefsHandler creates a new preferences handler.
func NewPrefsHandler(logger *slog.Logger) *PrefsHandler {
	return &PrefsHandler{logger: logger}
}

// Theme handles POST /prefs/theme by flipping light and dark.
func (h *PrefsHandler) Theme(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	store := prefs.NewCookieStore(w, r, r.TLS != nil)
	theme := prefs.ToggleTheme(store, prefs.NewRequestEnvironment(r))
	h.logger.DebugContext(r.Context(), "theme changed", "theme", theme)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "theme": theme})
		return
	}
	redirectBack(w, r)
}

// Language handles POST /prefs/language.
func (h *PrefsHandler) Language(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	lang := r.PostFormValue(FormLangName)
	store := prefs.NewCookieStore(w, r, r.TLS != nil)
	if err := prefs.SetLanguage(store, lang); err != nil {
		h.logger.DebugContext(r.Context(), "rejected language change", "lang", lang, "error", err)
		if wantsJSON(r) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		redirectBack(w, r)
		return
	}
	lang = prefs.ResolveLanguage(store, prefs.NewRequestEnvironment(r))
	h.logger.DebugContext(r.Context(), "language changed", "lang", lang)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "lang": lang})
		return
	}
	redirectBack(w, r)
}
