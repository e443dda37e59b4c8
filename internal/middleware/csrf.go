// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"filippo.io/csrf/gorilla"
)

// CSRFConfig holds configuration for CSRF protection.
// filippo.io/csrf/gorilla checks Fetch metadata headers instead of tokens,
// so the contact form and its fetch calls need no hidden field.
type CSRFConfig struct {
	// AuthKey is kept for API compatibility with gorilla/csrf; the session
	// secret is passed here.
	AuthKey []byte

	// ErrorHandler is called when CSRF validation fails.
	ErrorHandler http.Handler

	// TrustedOrigins lists host:port values allowed to post cross-origin.
	TrustedOrigins []string

	// Logger receives validation failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultCSRFConfig returns the site's CSRF configuration. In development
// the local server's own origins are trusted so tools like browser-sync work.
func DefaultCSRFConfig(authKey []byte, isDev bool, port int) CSRFConfig {
	cfg := CSRFConfig{
		AuthKey: authKey,
	}

	// The csrf library expects host-only values, not full URLs
	if isDev {
		p := strconv.Itoa(port)
		cfg.TrustedOrigins = []string{
			"localhost:" + p,
			"127.0.0.1:" + p,
		}
	}

	return cfg
}

// CSRF returns a middleware that rejects cross-site state-changing requests.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var opts []csrf.Option
	if cfg.ErrorHandler != nil {
		opts = append(opts, csrf.ErrorHandler(cfg.ErrorHandler))
	} else {
		opts = append(opts, csrf.ErrorHandler(csrfErrorHandler(logger)))
	}
	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}

	return csrf.Protect(cfg.AuthKey, opts...)
}

// csrfErrorHandler logs the failure reason and answers 403.
func csrfErrorHandler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reason := "unknown"
		if err := csrf.FailureReason(r); err != nil {
			reason = err.Error()
		}
		logger.WarnContext(r.Context(), "CSRF validation failed",
			"reason", reason,
			"method", r.Method,
			"origin", r.Header.Get("Origin"),
			"sec_fetch_site", r.Header.Get("Sec-Fetch-Site"),
		)
		http.Error(w, "Forbidden - CSRF validation failed", http.StatusForbidden)
	})
}
