// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
)

func TestBuildSitemap(t *testing.T) {
	updated := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	entries := []content.SitemapEntry{
		{Type: "blogPost", Slug: "my-post", UpdatedAt: updated},
		{Type: "project", Slug: "ss25-campaign"},
		{Type: "blogPost", Slug: ""},          // undefined slug is skipped
		{Type: "mysteryType", Slug: "ignore"}, // unknown types are skipped
	}

	out, err := BuildSitemap("https://example.com/", entries)
	require.NoError(t, err)

	var sm Sitemap
	require.NoError(t, xml.Unmarshal(out, &sm))
	assert.Equal(t, XMLNamespace, sm.XMLNS)

	locs := make([]string, 0, len(sm.URLs))
	for _, u := range sm.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/about",
		"https://example.com/contact",
		"https://example.com/blog",
		"https://example.com/projects",
		"https://example.com/blog/my-post",
		"https://example.com/projects/ss25-campaign",
	}, locs)

	assert.Equal(t, "2025-07-01T12:00:00Z", sm.URLs[5].LastMod)
	assert.Empty(t, sm.URLs[6].LastMod, "entries without an update time omit lastmod")
}

func TestBuildSitemapEmptyDataset(t *testing.T) {
	out, err := BuildSitemap("https://example.com", nil)
	require.NoError(t, err)

	var sm Sitemap
	require.NoError(t, xml.Unmarshal(out, &sm))
	assert.Len(t, sm.URLs, 5, "fixed pages are always present")
}
