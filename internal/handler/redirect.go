// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// localPath returns raw when it is a path on this site, fallback otherwise.
// Scheme-relative ("//host") and backslash variants are rejected (CWE-601).
func localPath(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return fallback
	}
	if strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return u.RequestURI()
}

// redirectBack sends the browser to the form's return path with 303 See Other.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := localPath(r.PostFormValue(FormReturnName), RouteRoot)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
