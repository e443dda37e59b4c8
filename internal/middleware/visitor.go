// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/davirds/portfolio/internal/logging"
)

// SessionKeyVisitorID is the session key holding the visitor id.
const SessionKeyVisitorID = "visitor_id"

// Visitor assigns each browser session a stable random id. It must run
// inside sm.LoadAndSave. The id keys the visitor's contact form state.
func Visitor(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id := sm.GetString(ctx, SessionKeyVisitorID)
			if id == "" {
				id = uuid.NewString()
				sm.Put(ctx, SessionKeyVisitorID, id)
			}

			ctx = WithVisitorID(ctx, id)
			ctx = logging.WithAttrs(ctx, slog.String("visitor_id", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetVisitorID returns the visitor id set by Visitor, or "".
func GetVisitorID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyVisitorID).(string)
	return id
}

// WithVisitorID returns a context carrying id, as Visitor does.
func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyVisitorID, id)
}
