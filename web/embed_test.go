// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"encoding/json"
	"io/fs"
	"testing"
)

func TestTemplates(t *testing.T) {
	for _, name := range []string{"layouts/base.html", "pages/home.html", "partials/contact_form.html"} {
		if _, err := fs.Stat(Templates(), name); err != nil {
			t.Errorf("template %s: %v", name, err)
		}
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/site.css", "js/site.js", "placeholder.svg", "favicon.svg"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("static %s: %v", name, err)
		}
	}
}

func TestProjectsJSON(t *testing.T) {
	var projects []map[string]any
	if err := json.Unmarshal(ProjectsJSON, &projects); err != nil {
		t.Fatalf("projects.json: %v", err)
	}
	if len(projects) == 0 {
		t.Error("projects.json is empty")
	}
}
