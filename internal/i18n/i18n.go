// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the site's translation catalogs (English and Portuguese).
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// Message represents a single translatable message.
type Message struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	Translation string `json:"translation"`
}

// MessageFile represents the structure of a messages JSON file.
type MessageFile struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// SupportedLanguages lists the site languages, default first.
var SupportedLanguages = []string{"en", "pt"}

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

// Catalog holds all translations for all supported languages.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string // lang -> key -> translation
	matcher      language.Matcher
	supported    []language.Tag
	defaultLang  string
	logger       *slog.Logger
}

// New loads every supported language from the embedded locale files.
func New(logger *slog.Logger) (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		defaultLang:  DefaultLanguage,
		logger:       logger,
	}

	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		tags = append(tags, language.MustParse(lang))
	}
	c.supported = tags
	c.matcher = language.NewMatcher(tags)

	for _, lang := range SupportedLanguages {
		if err := c.loadLanguage(lang); err != nil {
			return nil, fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}

	if logger != nil {
		logger.Info("i18n initialized", "languages", SupportedLanguages)
	}

	return c, nil
}

// loadLanguage loads translations for a specific language.
func (c *Catalog) loadLanguage(lang string) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[lang] = make(map[string]string, len(msgFile.Messages))
	for _, msg := range msgFile.Messages {
		c.translations[lang][msg.ID] = msg.Translation
	}

	if c.logger != nil {
		c.logger.Debug("loaded translations", "language", lang, "count", len(msgFile.Messages))
	}

	return nil
}

// T translates key into lang. Lookup falls back to the default language and
// finally to the key itself. Optional args are applied with fmt.Sprintf.
func (c *Catalog) T(lang, key string, args ...any) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	translation, ok := c.translations[lang][key]
	if !ok && lang != c.defaultLang {
		translation, ok = c.translations[c.defaultLang][key]
		if ok && c.logger != nil {
			c.logger.Debug("missing translation, using default", "key", key, "lang", lang)
		}
	}
	if !ok {
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(translation, args...)
	}
	return translation
}

// Localizer is a Catalog bound to one language.
type Localizer struct {
	catalog *Catalog
	lang    string
}

// Translator returns a Localizer for lang. Unsupported languages use the default.
func (c *Catalog) Translator(lang string) Localizer {
	if !IsSupported(lang) {
		lang = c.defaultLang
	}
	return Localizer{catalog: c, lang: strings.ToLower(lang)}
}

// T implements contact.Translator.
func (l Localizer) T(key string) string {
	if l.catalog == nil {
		return key
	}
	return l.catalog.T(l.lang, key)
}

// Lang returns the bound language code.
func (l Localizer) Lang() string {
	return l.lang
}

// Match finds the best supported language for an Accept-Language header
// or a single language code.
func (c *Catalog) Match(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return c.defaultLang
		}
		tags = []language.Tag{tag}
	}

	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	if idx >= 0 && idx < len(c.supported) {
		return c.supported[idx].String()
	}
	return c.defaultLang
}

// IsSupported checks if a language code is one of the site languages.
func IsSupported(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}

// TranslationCount returns the number of translations loaded for a language.
func (c *Catalog) TranslationCount(lang string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations[lang])
}
