// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"testing"
	"time"
)

func TestBuildSecurityTxt(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	tests := []struct {
		name string
		cfg  SecurityTxtConfig
		want string
	}{
		{
			name: "default expiry",
			cfg: SecurityTxtConfig{
				Contact: []string{"mailto:davirds.dev@gmail.com", ""},
				Now:     now,
			},
			want: "Contact: mailto:davirds.dev@gmail.com\nExpires: 2027-01-02T03:04:05Z\n",
		},
		{
			name: "all fields",
			cfg: SecurityTxtConfig{
				Contact:            []string{"mailto:a@example.com"},
				Expires:            time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
				PreferredLanguages: "en, pt",
				Canonical:          "https://davirds.dev/.well-known/security.txt",
			},
			want: "Contact: mailto:a@example.com\n" +
				"Expires: 2030-06-01T00:00:00Z\n" +
				"Preferred-Languages: en, pt\n" +
				"Canonical: https://davirds.dev/.well-known/security.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSecurityTxt(tt.cfg); got != tt.want {
				t.Errorf("BuildSecurityTxt() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
