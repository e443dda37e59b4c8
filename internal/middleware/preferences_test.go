// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davirds/portfolio/internal/prefs"
)

func TestPreferences(t *testing.T) {
	tests := []struct {
		name     string
		cookies  []*http.Cookie
		headers  map[string]string
		wantLang string
		want     string
	}{
		{
			name:     "defaults",
			wantLang: "en",
			want:     "light",
		},
		{
			name:     "ambient portuguese and dark",
			headers:  map[string]string{"Accept-Language": "pt-BR,pt;q=0.9", prefs.ClientHintHeader: `"dark"`},
			wantLang: "pt",
			want:     "dark",
		},
		{
			name:     "cookies win over environment",
			cookies:  []*http.Cookie{{Name: "lang", Value: "en"}, {Name: "theme", Value: "light"}},
			headers:  map[string]string{"Accept-Language": "pt-BR", prefs.ClientHintHeader: "dark"},
			wantLang: "en",
			want:     "light",
		},
		{
			name:     "invalid cookie ignored",
			cookies:  []*http.Cookie{{Name: "lang", Value: "fr"}},
			headers:  map[string]string{"Accept-Language": "pt"},
			wantLang: "pt",
			want:     "light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got prefs.Preferences
			handler := Preferences(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetPreferences(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if got.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", got.Language, tt.wantLang)
			}
			if got.Theme != tt.want {
				t.Errorf("Theme = %q, want %q", got.Theme, tt.want)
			}
			if rec.Header().Get("Accept-CH") != prefs.ClientHintHeader {
				t.Errorf("Accept-CH = %q", rec.Header().Get("Accept-CH"))
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("resolving preferences should not write cookies")
			}
		})
	}
}

func TestGetPreferencesDefaults(t *testing.T) {
	p := GetPreferences(context.Background())
	if p.Language != prefs.LanguageEnglish || p.Theme != prefs.ThemeLight {
		t.Errorf("GetPreferences() = %+v, want en/light", p)
	}

	ctx := WithPreferences(context.Background(), prefs.Preferences{Language: "pt", Theme: "dark"})
	if got := GetPreferences(ctx); got.Language != "pt" || got.Theme != "dark" {
		t.Errorf("GetPreferences() = %+v, want pt/dark", got)
	}
}
