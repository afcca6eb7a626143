// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownConverts(t *testing.T) {
	out := string(Markdown("# Heading\n\nSome *emphasis* here."))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestMarkdownSanitizes(t *testing.T) {
	out := string(Markdown(`Hello <script>alert("xss")</script> world`))
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "Hello")
}

func TestMarkdownStripsEventHandlers(t *testing.T) {
	out := string(Markdown(`<a href="https://example.com" onclick="steal()">link</a>`))
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "example.com")
}

func TestMarkdownGFMTables(t *testing.T) {
	out := string(Markdown("| a | b |\n|---|---|\n| 1 | 2 |"))
	assert.Contains(t, out, "<table")
}

func TestFuncsFormatDate(t *testing.T) {
	funcs := Funcs()
	formatDate := funcs["formatDate"].(func(time.Time) string)

	assert.Equal(t, "June 15, 2025", formatDate(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, formatDate(time.Time{}), "zero time renders nothing")
}

func TestFuncsArithmetic(t *testing.T) {
	funcs := Funcs()
	add := funcs["add"].(func(int, int) int)
	sub := funcs["sub"].(func(int, int) int)
	assert.Equal(t, 3, add(1, 2))
	assert.Equal(t, 1, sub(3, 2))
}

func TestFuncMapComplete(t *testing.T) {
	funcs := Funcs()
	for _, name := range []string{
		"markdown", "heroURL", "coverURL", "cardURL", "galleryURL",
		"thumbURL", "blurData", "sizes", "formatDate", "add", "sub",
	} {
		_, ok := funcs[name]
		assert.True(t, ok, "missing template func %q", name)
	}
}

func TestMarkdownInvalidInputEscaped(t *testing.T) {
	// Even degenerate input never produces raw unescaped HTML.
	out := string(Markdown(strings.Repeat("<", 10)))
	assert.NotContains(t, out, "<<")
}
