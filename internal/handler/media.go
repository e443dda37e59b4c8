// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/davirds/portfolio/internal/util"
)

// MediaHandler serves files from the media directory (project screenshots,
// testimonial photos). Directories are never listed.
type MediaHandler struct {
	dir string
}

// NewMediaHandler creates a handler for dir.
func NewMediaHandler(dir string) *MediaHandler {
	return &MediaHandler{dir: dir}
}

// Serve handles GET /media/*.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if name == "" || strings.HasPrefix(name, ".") || strings.Contains(name, "/.") {
		http.NotFound(w, r)
		return
	}

	full, err := util.SafeJoinPath(h.dir, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, full)
}
