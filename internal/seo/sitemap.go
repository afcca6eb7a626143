// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// fixedPages are the static page paths always present in the sitemap.
var fixedPages = []string{"/", "/about", "/contact", "/blog", "/projects"}

// basePathForType maps sluggable document types to their URL prefix.
var basePathForType = map[string]string{
	"blogPost": "/blog",
	"project":  "/projects",
}

// BuildSitemap assembles sitemap XML from the fixed pages plus every
// sluggable document.
func BuildSitemap(baseURL string, entries []content.SitemapEntry) ([]byte, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	sitemap := Sitemap{XMLNS: XMLNamespace}
	for _, page := range fixedPages {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{Loc: baseURL + page})
	}
	for _, entry := range entries {
		base, ok := basePathForType[entry.Type]
		if !ok || entry.Slug == "" {
			continue
		}
		u := SitemapURL{Loc: fmt.Sprintf("%s%s/%s", baseURL, base, entry.Slug)}
		if !entry.UpdatedAt.IsZero() {
			u.LastMod = entry.UpdatedAt.Format(time.RFC3339)
		}
		sitemap.URLs = append(sitemap.URLs, u)
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
