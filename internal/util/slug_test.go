// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Éditorial à Paris", "editorial-a-paris"},
		{"Behind the Scenes: SS25", "behind-the-scenes-ss25"},
		{"  spaced  out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE", "upper-case"},
		{"dots.and/slashes", "dotsandslashes"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "hello-world", "ss25-lookbook", "x1-y2-z3"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "%q should be valid", s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "émoji"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "%q should be invalid", s)
	}
}
