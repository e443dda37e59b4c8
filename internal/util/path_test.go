// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"path/filepath"
	"testing"
)

func TestSafeJoinPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain file", "mockup.jpg", filepath.Join(base, "mockup.jpg"), false},
		{"subdirectory", "psi/mockup.webp", filepath.Join(base, "psi", "mockup.webp"), false},
		{"dot segments that stay inside", "psi/../mockup.jpg", filepath.Join(base, "mockup.jpg"), false},
		{"parent escape", "../secret.txt", "", true},
		{"deep escape", "psi/../../secret.txt", "", true},
		{"absolute path", "/etc/passwd", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoinPath(base, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SafeJoinPath(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeJoinPath(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SafeJoinPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsPathTraversal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"mockup.jpg", false},
		{"a/b/c.png", false},
		{"a/../b.png", false},
		{"..", true},
		{"../a", true},
		{"a/../../b", true},
		{"/abs", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ContainsPathTraversal(tt.path); got != tt.want {
				t.Errorf("ContainsPathTraversal(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
