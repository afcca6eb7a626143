// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render handles HTML template rendering for the site.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/images"
)

// htmlSanitizer strips unsafe markup from rendered markdown.
// UGCPolicy allows the tag set appropriate for editor-authored content.
var htmlSanitizer = bluemonday.UGCPolicy()

// markdown is the shared converter for rich-text blocks.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
)

// Renderer parses the embedded templates once and renders pages.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// New creates a Renderer from the templates filesystem. Every page
// template under pages/ is parsed together with the base layout and
// partials.
func New(templatesFS fs.FS, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		templates: make(map[string]*template.Template),
		logger:    logger,
	}

	partials, err := fs.Glob(templatesFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("globbing partials: %w", err)
	}
	pages, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("globbing pages: %w", err)
	}

	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")

		files := []string{"templates/layouts/base.html"}
		files = append(files, partials...)
		files = append(files, page)

		tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templatesFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// HTML renders a named page template. Render errors surface as a 500
// after logging; partial output is never written.
func (r *Renderer) HTML(w http.ResponseWriter, statusCode int, name string, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		r.logger.Error("unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		r.logger.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

// Markdown converts markdown source to sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}

// Funcs returns the template function map shared by all pages.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"heroURL": func(img *content.Image) string {
			return images.URLFor(img, images.PresetHero)
		},
		"coverURL": func(img *content.Image) string {
			return images.URLFor(img, images.PresetCover)
		},
		"cardURL": func(img *content.Image) string {
			return images.URLFor(img, images.PresetCard)
		},
		"galleryURL": func(img *content.Image) string {
			return images.URLFor(img, images.PresetGallery)
		},
		"thumbURL": func(img *content.Image) string {
			return images.URLFor(img, images.PresetThumbnail)
		},
		"blurData": func(img *content.Image) string {
			lqip, _ := images.BlurPlaceholder(img)
			return lqip
		},
		"sizes": func(variant string) string {
			return images.ResponsiveSizes(images.Variant(variant))
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}
