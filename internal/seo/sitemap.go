// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds robots.txt, sitemap.xml and security.txt for the site.
package seo

import (
	"encoding/xml"
	"net/url"
	"strings"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder collects site URLs.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder for siteURL (scheme and host).
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{siteURL: strings.TrimSuffix(siteURL, "/")}
}

// AddHomepage adds the home page.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "1.0",
	})
}

// AddPath adds a page by its path.
func (b *SitemapBuilder) AddPath(path string, freq ChangeFreq, priority string) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + strings.TrimPrefix(path, "/"),
		ChangeFreq: freq,
		Priority:   priority,
	})
}

// AddProjectFilters adds the home page filtered by each project category slug.
func (b *SitemapBuilder) AddProjectFilters(slugs []string) {
	for _, slug := range slugs {
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + "/?category=" + url.QueryEscape(slug),
			ChangeFreq: ChangeFreqMonthly,
			Priority:   "0.5",
		})
	}
}

// Len returns the number of collected URLs.
func (b *SitemapBuilder) Len() int {
	return len(b.urls)
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
