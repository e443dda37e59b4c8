// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package prefs

import (
	"net/http"
	"strings"
)

// CookieMaxAge keeps preferences for one year.
const CookieMaxAge = 365 * 24 * 60 * 60

// CookieStore persists preferences as long-lived cookies. Values set during a
// request are visible to later Gets on the same store.
type CookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	written map[string]string
}

// NewCookieStore creates a store reading from r and writing to w.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{w: w, r: r, secure: secure, written: make(map[string]string)}
}

// Get implements Store.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set implements Store.
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClientHintHeader carries the browser's colour scheme preference.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// RequestEnvironment reads the ambient preferences from request headers.
type RequestEnvironment struct {
	r *http.Request
}

// NewRequestEnvironment wraps r.
func NewRequestEnvironment(r *http.Request) RequestEnvironment {
	return RequestEnvironment{r: r}
}

// Locale implements Environment.
func (e RequestEnvironment) Locale() string {
	return e.r.Header.Get("Accept-Language")
}

// ColorScheme implements Environment.
func (e RequestEnvironment) ColorScheme() string {
	v := strings.Trim(strings.TrimSpace(e.r.Header.Get(ClientHintHeader)), `"`)
	switch strings.ToLower(v) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	}
	return ""
}
