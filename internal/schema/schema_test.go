// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeByName(t *testing.T) {
	typ, ok := TypeByName("blogPost")
	require.True(t, ok)
	assert.Equal(t, "Blog Post", typ.Title)
	assert.Equal(t, KindDocument, typ.Kind)

	_, ok = TypeByName("nonsense")
	assert.False(t, ok)
}

func TestDocumentTypes(t *testing.T) {
	docs := DocumentTypes()
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		assert.Equal(t, KindDocument, d.Kind)
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{
		"siteSettings", "navigation", "homepage", "aboutPage",
		"contactPage", "blogPost", "project", "popupContent",
	}, names)
}

func TestSingletonFlags(t *testing.T) {
	for _, name := range []string{"siteSettings", "navigation", "homepage", "aboutPage", "contactPage"} {
		typ, ok := TypeByName(name)
		require.True(t, ok, name)
		assert.True(t, typ.Singleton, "%s must be a singleton", name)
	}
	for _, name := range []string{"blogPost", "project", "popupContent"} {
		typ, ok := TypeByName(name)
		require.True(t, ok, name)
		assert.False(t, typ.Singleton, name)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	typ, _ := TypeByName("blogPost")

	issues := typ.Validate(map[string]any{})
	require.NotEmpty(t, issues)

	fields := make(map[string]bool)
	for _, issue := range issues {
		assert.Equal(t, SeverityError, issue.Severity)
		fields[issue.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["slug"])
	assert.True(t, fields["coverImage"])
	assert.True(t, fields["content"])
	assert.True(t, fields["publishedAt"])
	assert.False(t, fields["excerpt"], "optional field must not be required")
}

func TestValidateSlugFormat(t *testing.T) {
	typ, _ := TypeByName("project")

	issues := typ.Validate(map[string]any{"slug": "Not A Slug"})
	var found bool
	for _, issue := range issues {
		if issue.Field == "slug" && issue.Severity == SeverityError &&
			strings.Contains(issue.Message, "lowercase") {
			found = true
		}
	}
	assert.True(t, found, "invalid slug must be rejected")
}

func TestValidateImageAltRequired(t *testing.T) {
	typ, _ := TypeByName("blogPost")

	issues := typ.Validate(map[string]any{
		"coverImage": map[string]any{"asset": map[string]any{"_ref": "image-1"}},
	})
	var found bool
	for _, issue := range issues {
		if issue.Field == "coverImage" && strings.Contains(issue.Message, "alternative text") {
			found = true
			assert.Equal(t, SeverityError, issue.Severity)
		}
	}
	assert.True(t, found, "image without alt must error")

	issues = typ.Validate(map[string]any{
		"coverImage": map[string]any{"asset": map[string]any{"_ref": "image-1"}, "alt": "A portrait"},
	})
	for _, issue := range issues {
		assert.NotEqual(t, "coverImage", issue.Field)
	}
}

func TestValidateCategoryEnum(t *testing.T) {
	typ, _ := TypeByName("project")

	issues := typ.Validate(map[string]any{"category": "fashion"})
	var found bool
	for _, issue := range issues {
		if issue.Field == "category" {
			found = true
			assert.Equal(t, SeverityError, issue.Severity)
		}
	}
	assert.True(t, found, "out-of-set category must error")

	issues = typ.Validate(map[string]any{"category": "editorial"})
	for _, issue := range issues {
		assert.NotEqual(t, "category", issue.Field)
	}
}

func TestValidateAdvisoryLengthWarns(t *testing.T) {
	typ, ok := TypeByName("seo")
	require.True(t, ok)

	issues := typ.Validate(map[string]any{
		"metaTitle": strings.Repeat("x", MetaTitleMaxLength+1),
	})
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity, "SEO length caps are advisory")
	assert.Equal(t, "metaTitle", issues[0].Field)
}

func TestValidateCleanDocument(t *testing.T) {
	typ, _ := TypeByName("popupContent")

	issues := typ.Validate(map[string]any{
		"title":       "Silk scarf",
		"description": "Vintage silk scarf from the SS25 shoot.",
	})
	assert.Empty(t, issues)
}

func TestSlugFor(t *testing.T) {
	typ, _ := TypeByName("blogPost")

	slug := SlugFor(typ, map[string]any{"title": "Behind the Scenes: SS25"})
	assert.Equal(t, "behind-the-scenes-ss25", slug)

	// No slug-source value present.
	assert.Empty(t, SlugFor(typ, map[string]any{}))

	// Types without a slug field derive nothing.
	settings, _ := TypeByName("siteSettings")
	assert.Empty(t, SlugFor(settings, map[string]any{"siteName": "Jane"}))
}
