// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/davirds/portfolio/internal/contact"
	"github.com/davirds/portfolio/internal/i18n"
	"github.com/davirds/portfolio/internal/middleware"
	"github.com/davirds/portfolio/internal/prefs"
	"github.com/davirds/portfolio/internal/projects"
	"github.com/davirds/portfolio/internal/render"
	"github.com/davirds/portfolio/internal/testutil"
	"github.com/davirds/portfolio/web"
)

const testVisitor = "visitor-1"

// stubSink counts deliveries and can block until released.
type stubSink struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubSink) Send(ctx context.Context, _ contact.Payload) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

func (s *stubSink) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// testEnv wires the real templates, translations and projects catalog.
type testEnv struct {
	catalog  *i18n.Catalog
	renderer *render.Renderer
	projects *projects.Catalog
	forms    *contact.Registry
	sink     *stubSink
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := i18n.New(nil)
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: web.Templates(), Catalog: catalog})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	projectCatalog, err := projects.New(web.ProjectsJSON, "", testutil.TestLoggerSilent())
	if err != nil {
		t.Fatalf("projects.New: %v", err)
	}

	sink := &stubSink{}
	return &testEnv{
		catalog:  catalog,
		renderer: renderer,
		projects: projectCatalog,
		sink:     sink,
		forms: contact.NewRegistry(contact.Config{
			Sink:   sink,
			Logger: testutil.TestLoggerSilent(),
		}),
	}
}

func (e *testEnv) site() *SiteHandler {
	return NewSiteHandler(e.renderer, e.catalog, e.projects, e.forms, testutil.TestLoggerSilent())
}

func (e *testEnv) contact() *ContactHandler {
	return NewContactHandler(e.forms, e.catalog, testutil.TestLoggerSilent())
}

// withVisitor attaches a visitor id and language as the middleware chain would.
func withVisitor(r *http.Request, lang string) *http.Request {
	ctx := middleware.WithVisitorID(r.Context(), testVisitor)
	ctx = middleware.WithPreferences(ctx, prefs.Preferences{Language: lang, Theme: prefs.ThemeLight})
	return r.WithContext(ctx)
}

// formBody encodes pairs of key, value.
func formBody(kv ...string) *strings.Reader {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Add(kv[i], kv[i+1])
	}
	return strings.NewReader(v.Encode())
}

func validForm(extra ...string) []string {
	return append([]string{
		"name", "Ana",
		"email", "ana@example.com",
		"whatsapp", "5511999998888",
		"subject", "Website",
		"message", "I would like a new landing page.",
	}, extra...)
}
