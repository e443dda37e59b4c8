// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package uikit provides the small, dependency-free template helpers shared
// by the site's page templates.
package uikit

import (
	"html/template"
	"strings"
	"time"
	"unicode/utf8"
)

// TemplateFuncs returns a template.FuncMap with pure, reusable helper functions.
//
// Callers can merge project-specific functions on top:
//
//	funcs := uikit.TemplateFuncs()
//	funcs["t"] = translate
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":    strings.ToUpper,
		"truncate": Truncate,
		"year": func() int {
			return time.Now().Year()
		},
		"dict": Dict,
	}
}

// Truncate shortens s to at most length characters, appending "..." when cut.
// Multi-byte characters are never split.
func Truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return string(runes[:length]) + "..."
}

// Dict builds a map from alternating keys and values so templates can pass
// several values to a partial. Non-string keys are skipped; an odd number of
// arguments returns nil.
func Dict(values ...any) map[string]any {
	if len(values)%2 != 0 {
		return nil
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
