// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"sync"
	"time"
)

// Registry keeps one Controller per visitor for the lifetime of their visit.
// Controllers live in memory only; idle ones are removed by Sweep.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	cfg     Config
	now     func() time.Time
}

type registryEntry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// NewRegistry creates an empty registry. Every controller it creates shares cfg.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Get returns the visitor's controller, creating it on first use.
func (r *Registry) Get(visitorID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[visitorID]
	if !ok {
		cfg := r.cfg
		if cfg.Logger != nil {
			cfg.Logger = cfg.Logger.With("visitor_id", visitorID)
		}
		e = &registryEntry{ctrl: NewController(cfg)}
		r.entries[visitorID] = e
	}
	e.lastSeen = r.now()
	return e.ctrl
}

// Len returns the number of live controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep removes controllers not used for longer than idle. Controllers with a
// submission in flight are kept. Returns the number removed.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.ctrl.State().Submitting() {
			continue
		}
		delete(r.entries, id)
		removed++
	}
	return removed
}
