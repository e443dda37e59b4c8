// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/davirds/portfolio/internal/logging"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys set by this package.
const (
	ContextKeyRequestPath ContextKey = "request_path"
	ContextKeyPreferences ContextKey = "preferences"
	ContextKeyVisitorID   ContextKey = "visitor_id"
)

// RequestPath stores the request path in the context and attaches it to
// every log record emitted while serving the request.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		ctx = logging.WithAttrs(ctx, slog.String("path", r.URL.Path))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath returns the path stored by RequestPath, or "".
func GetRequestPath(ctx context.Context) string {
	path, _ := ctx.Value(ContextKeyRequestPath).(string)
	return path
}
