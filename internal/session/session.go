// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the scs session manager that keeps each
// visitor's id between requests.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// Config holds session settings.
type Config struct {
	IsDevelopment bool
	Lifetime      time.Duration // Default: 24h
	RedisURL      string        // Empty selects the in-memory store
	RedisPrefix   string        // Key prefix for the Redis store
	Logger        *slog.Logger
}

// Manager wraps the scs session manager together with the store's cleanup.
type Manager struct {
	*scs.SessionManager
	closeStore func() error
	Backend    string
}

// New creates a session manager. With a Redis URL the store is Redis and
// the connection is checked before returning; otherwise sessions live in
// memory and are lost on restart.
func New(ctx context.Context, cfg Config) (*Manager, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = 24 * time.Hour
	}

	sm := scs.New()
	m := &Manager{SessionManager: sm}

	if cfg.RedisURL != "" {
		store, err := NewRedisStore(ctx, RedisStoreOptions{URL: cfg.RedisURL, Prefix: cfg.RedisPrefix})
		if err != nil {
			return nil, fmt.Errorf("connecting session store at %s: %w", maskRedisURL(cfg.RedisURL), err)
		}
		sm.Store = store
		m.closeStore = store.Close
		m.Backend = "redis"
		cfg.Logger.Info("session store ready", "backend", m.Backend, "url", maskRedisURL(cfg.RedisURL))
	} else {
		store := memstore.NewWithCleanupInterval(time.Minute)
		sm.Store = store
		m.closeStore = func() error {
			store.StopCleanup()
			return nil
		}
		m.Backend = "memory"
		cfg.Logger.Info("session store ready", "backend", m.Backend)
	}

	sm.Lifetime = cfg.Lifetime
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !cfg.IsDevelopment
	if !cfg.IsDevelopment {
		// __Host- cookies must be Secure, host-only and scoped to "/"
		sm.Cookie.Name = "__Host-session"
	}

	return m, nil
}

// Close releases the store.
func (m *Manager) Close() error {
	if m.closeStore == nil {
		return nil
	}
	return m.closeStore()
}

// maskRedisURL hides credentials in a Redis URL for logging.
func maskRedisURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil || u.Host == "" {
		return raw
	}
	return u.Scheme + "://***@" + u.Host + u.Path
}
