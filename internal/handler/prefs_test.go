// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davirds/portfolio/internal/prefs"
	"github.com/davirds/portfolio/internal/testutil"
)

func cookieValue(w *httptest.ResponseRecorder, name string) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestPrefsHandler_Theme(t *testing.T) {
	h := NewPrefsHandler(testutil.TestLoggerSilent())

	tests := []struct {
		name      string
		cookie    string
		hint      string
		wantTheme string
	}{
		{"default light becomes dark", "", "", prefs.ThemeDark},
		{"stored dark becomes light", prefs.ThemeDark, "", prefs.ThemeLight},
		{"ambient dark becomes light", "", "dark", prefs.ThemeLight},
		{"stored wins over ambient", prefs.ThemeLight, "dark", prefs.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, RoutePrefsTheme, formBody("return", "/?category=web"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: prefs.KeyTheme, Value: tt.cookie})
			}
			if tt.hint != "" {
				req.Header.Set(prefs.ClientHintHeader, tt.hint)
			}
			w := httptest.NewRecorder()

			h.Theme(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
			}
			if got := w.Header().Get("Location"); got != "/?category=web" {
				t.Errorf("Location = %q", got)
			}
			if got := cookieValue(w, prefs.KeyTheme); got != tt.wantTheme {
				t.Errorf("theme cookie = %q, want %q", got, tt.wantTheme)
			}
		})
	}
}

func TestPrefsHandler_Language(t *testing.T) {
	h := NewPrefsHandler(testutil.TestLoggerSilent())

	tests := []struct {
		name       string
		lang       string
		returnPath string
		wantCookie string
		wantLoc    string
	}{
		{"switch to portuguese", "pt", "/#contact", "pt", "/"},
		{"upper case accepted", "EN", "/", "en", "/"},
		{"unsupported ignored", "de", "/", "", "/"},
		{"external return rejected", "pt", "https://evil.example/", "pt", "/"},
		{"scheme relative rejected", "pt", "//evil.example", "pt", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, RoutePrefsLanguage, formBody("lang", tt.lang, "return", tt.returnPath))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			h.Language(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
			}
			if got := w.Header().Get("Location"); got != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got, tt.wantLoc)
			}
			if got := cookieValue(w, prefs.KeyLanguage); got != tt.wantCookie {
				t.Errorf("language cookie = %q, want %q", got, tt.wantCookie)
			}
		})
	}
}

func TestPrefsHandler_LanguageJSON(t *testing.T) {
	h := NewPrefsHandler(testutil.TestLoggerSilent())

	req := httptest.NewRequest(http.MethodPost, RoutePrefsLanguage, formBody("lang", "xx"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	h.Language(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
