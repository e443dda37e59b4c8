// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"
)

// SecurityTxtConfig holds the fields of security.txt (RFC 9116).
type SecurityTxtConfig struct {
	// Contact is required, e.g. "mailto:davirds.dev@gmail.com".
	Contact []string

	// Expires is required. Zero means one year after Now.
	Expires time.Time

	// PreferredLanguages is optional, e.g. "en, pt".
	PreferredLanguages string

	// Canonical is optional. The public URL of the file.
	Canonical string

	// Now is the clock used for the default expiry. Defaults to time.Now.
	Now func() time.Time
}

// BuildSecurityTxt generates the security.txt content.
func BuildSecurityTxt(cfg SecurityTxtConfig) string {
	var sb strings.Builder

	for _, contact := range cfg.Contact {
		if contact != "" {
			writeField(&sb, "Contact", contact)
		}
	}

	expires := cfg.Expires
	if expires.IsZero() {
		now := time.Now
		if cfg.Now != nil {
			now = cfg.Now
		}
		expires = now().AddDate(1, 0, 0)
	}
	writeField(&sb, "Expires", expires.UTC().Format(time.RFC3339))

	if cfg.PreferredLanguages != "" {
		writeField(&sb, "Preferred-Languages", cfg.PreferredLanguages)
	}
	if cfg.Canonical != "" {
		writeField(&sb, "Canonical", cfg.Canonical)
	}

	return sb.String()
}

func writeField(sb *strings.Builder, name, value string) {
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}
