// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/davirds/portfolio/internal/logging"
	"github.com/davirds/portfolio/internal/prefs"
)

// Preferences resolves the visitor's language and theme from the preference
// cookies, falling back to Accept-Language and the colour scheme client hint.
// The result is available through GetPreferences.
func Preferences(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Ask the browser to send its colour scheme on later requests.
		w.Header().Set("Accept-CH", prefs.ClientHintHeader)
		w.Header().Add("Vary", prefs.ClientHintHeader)

		p := prefs.Resolve(prefs.NewCookieStore(w, r, r.TLS != nil), prefs.NewRequestEnvironment(r))

		ctx := context.WithValue(r.Context(), ContextKeyPreferences, p)
		ctx = logging.WithAttrs(ctx, slog.String("lang", p.Language))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPreferences returns the preferences resolved for the request.
// Without the middleware the site defaults (English, light) are returned.
func GetPreferences(ctx context.Context) prefs.Preferences {
	if p, ok := ctx.Value(ContextKeyPreferences).(prefs.Preferences); ok {
		return p
	}
	return prefs.Preferences{Language: prefs.LanguageEnglish, Theme: prefs.ThemeLight}
}

// WithPreferences returns a copy of ctx carrying p. Handlers use it after a
// preference changes within the request.
func WithPreferences(ctx context.Context, p prefs.Preferences) context.Context {
	return context.WithValue(ctx, ContextKeyPreferences, p)
}
