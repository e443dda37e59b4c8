// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple category", "web", "web"},
		{"two words", "Backend Services", "backend-services"},
		{"special characters", "APIs & Integrations", "apis-integrations"},
		{"with numbers", "Web 3", "web-3"},
		{"portuguese accents", "Automação", "automacao"},
		{"german umlauts", "Über München", "uber-munchen"},
		{"cyrillic transliterated", "Москва", "moskva"},
		{"multiple spaces", "Hello   World", "hello-world"},
		{"leading and trailing spaces", "  devops  ", "devops"},
		{"hyphens kept single", "Front - End", "front-end"},
		{"only symbols", "!@#$%^&*()", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"web", true},
		{"backend-services", true},
		{"web-3", true},
		{"", false},
		{"-web", false},
		{"web-", false},
		{"web--api", false},
		{"Web", false},
		{"web api", false},
		{"automação", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := IsValidSlug(tt.slug); got != tt.valid {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.valid)
			}
		})
	}
}

func TestSlugifyProducesValidSlugs(t *testing.T) {
	inputs := []string{"web", "Mobile Apps", "Automação", "APIs & Integrations", "DevOps / Cloud"}
	for _, in := range inputs {
		if s := Slugify(in); !IsValidSlug(s) {
			t.Errorf("Slugify(%q) = %q is not a valid slug", in, s)
		}
	}
}
