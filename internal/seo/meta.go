// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds page metadata and the sitemap from queried content.
package seo

import (
	"strings"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/images"
)

// Meta is the resolved metadata for one rendered page.
type Meta struct {
	Title       string
	Description string
	OGImageURL  string
	Canonical   string
}

// Resolve computes page metadata: the per-page SEO override wins, then the
// site default, then the supplied fallback title. The site name is
// appended to page titles that don't already carry it.
func Resolve(pageSEO *content.SEO, settings *content.SiteSettings, fallbackTitle, canonical string) Meta {
	meta := Meta{Title: fallbackTitle, Canonical: canonical}

	var defaultSEO *content.SEO
	siteName := ""
	if settings != nil {
		defaultSEO = settings.DefaultSEO
		siteName = settings.SiteName
	}

	if pageSEO != nil && pageSEO.MetaTitle != "" {
		meta.Title = pageSEO.MetaTitle
	}
	switch {
	case pageSEO != nil && pageSEO.MetaDescription != "":
		meta.Description = pageSEO.MetaDescription
	case defaultSEO != nil:
		meta.Description = defaultSEO.MetaDescription
	}

	var ogImage *content.Image
	switch {
	case pageSEO != nil && pageSEO.OGImage != nil:
		ogImage = pageSEO.OGImage
	case defaultSEO != nil && defaultSEO.OGImage != nil:
		ogImage = defaultSEO.OGImage
	}
	if ogImage != nil {
		meta.OGImageURL = images.URLFor(ogImage, images.PresetOG)
	}

	if siteName != "" && meta.Title != siteName && !strings.Contains(meta.Title, siteName) {
		if meta.Title == "" {
			meta.Title = siteName
		} else {
			meta.Title = meta.Title + " | " + siteName
		}
	}

	return meta
}
