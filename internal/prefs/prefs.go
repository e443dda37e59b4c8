// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package prefs resolves the visitor's display language and colour theme
// from a persistent preference store and the browsing environment.
package prefs

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Preference keys.
const (
	KeyLanguage = "lang"
	KeyTheme    = "theme"
)

// Supported values.
const (
	LanguageEnglish    = "en"
	LanguagePortuguese = "pt"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrUnsupportedLanguage is returned by SetLanguage for codes other than en and pt.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Store is a persistent string key-value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Environment reports what the browsing environment prefers when nothing is stored.
type Environment interface {
	// Locale returns the ambient locale, e.g. an Accept-Language value.
	Locale() string
	// ColorScheme returns "dark", "light" or "" when unknown.
	ColorScheme() string
}

// Preferences is the resolved pair used to render a page.
type Preferences struct {
	Language string
	Theme    string
}

// Resolve returns both preferences.
func Resolve(store Store, env Environment) Preferences {
	return Preferences{
		Language: ResolveLanguage(store, env),
		Theme:    ResolveTheme(store, env),
	}
}

// ResolveLanguage returns the stored language when valid, otherwise pt when
// the ambient locale is Portuguese, otherwise en.
func ResolveLanguage(store Store, env Environment) string {
	if store != nil {
		if v, ok := store.Get(KeyLanguage); ok && isLanguage(v) {
			return v
		}
	}
	if env != nil && baseLanguage(env.Locale()) == LanguagePortuguese {
		return LanguagePortuguese
	}
	return LanguageEnglish
}

// ResolveTheme returns the stored theme when valid, otherwise dark when the
// environment prefers it, otherwise light.
func ResolveTheme(store Store, env Environment) string {
	if store != nil {
		if v, ok := store.Get(KeyTheme); ok && isTheme(v) {
			return v
		}
	}
	if env != nil && strings.EqualFold(strings.TrimSpace(env.ColorScheme()), ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// ToggleTheme flips the current theme, persists it and returns the new value.
func ToggleTheme(store Store, env Environment) string {
	next := ThemeDark
	if ResolveTheme(store, env) == ThemeDark {
		next = ThemeLight
	}
	store.Set(KeyTheme, next)
	return next
}

// SetLanguage persists lang after validating it.
func SetLanguage(store Store, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !isLanguage(lang) {
		return ErrUnsupportedLanguage
	}
	store.Set(KeyLanguage, lang)
	return nil
}

func isLanguage(v string) bool {
	return v == LanguageEnglish || v == LanguagePortuguese
}

func isTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark
}

// baseLanguage returns the base subtag of the most preferred locale.
func baseLanguage(locale string) string {
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, _ := tags[0].Base()
	return base.String()
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// StaticEnvironment is an Environment with fixed values.
type StaticEnvironment struct {
	AmbientLocale string
	Scheme        string
}

// Locale implements Environment.
func (e StaticEnvironment) Locale() string { return e.AmbientLocale }

// ColorScheme implements Environment.
func (e StaticEnvironment) ColorScheme() string { return e.Scheme }
