// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package images derives delivery URLs and responsive-loading metadata from
// stored image references. All functions are pure; the image service is
// consumed purely through URL construction.
package images

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
)

// Preset is a named delivery size. The set of presets is closed: callers
// reference the exported values below, so an unknown preset cannot be
// expressed.
type Preset struct {
	Name    string
	Width   int
	Height  int // 0 = preserve aspect ratio
	Quality int
}

// Delivery presets used across the site.
var (
	PresetHero         = Preset{Name: "hero", Width: 1920, Quality: 90}
	PresetCover        = Preset{Name: "cover", Width: 1200, Height: 800, Quality: 85}
	PresetBlogFeatured = Preset{Name: "blogFeatured", Width: 800, Height: 450, Quality: 85}
	PresetCard         = Preset{Name: "card", Width: 600, Height: 400, Quality: 80}
	PresetThumbnail    = Preset{Name: "thumbnail", Width: 400, Height: 400, Quality: 80}
	PresetGallery      = Preset{Name: "gallery", Width: 1080, Quality: 85}
	PresetOG           = Preset{Name: "og", Width: 1200, Height: 630, Quality: 80}
)

// Options are explicit delivery parameters for callers that need a size
// outside the preset table.
type Options struct {
	Width   int
	Height  int
	Quality int
}

// URLFor computes the delivery URL for an image at a named preset.
// Returns "" when the image carries no resolvable asset.
func URLFor(img *content.Image, p Preset) string {
	return URLWithOptions(img, Options{Width: p.Width, Height: p.Height, Quality: p.Quality})
}

// URLWithOptions computes the delivery URL with explicit parameters.
// The base URL comes from the expanded asset reference; width, height,
// quality and auto-format negotiation are appended as query parameters.
// Height implies fit=crop so the service honors the stored hotspot.
func URLWithOptions(img *content.Image, opts Options) string {
	if img == nil || img.Asset == nil || img.Asset.URL == "" {
		return ""
	}

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
		q.Set("fit", "crop")
	}
	if opts.Quality > 0 {
		q.Set("q", strconv.Itoa(opts.Quality))
	}
	q.Set("auto", "format")

	if rect, ok := cropRect(img); ok {
		q.Set("rect", rect)
	}

	sep := "?"
	if strings.Contains(img.Asset.URL, "?") {
		sep = "&"
	}
	return img.Asset.URL + sep + q.Encode()
}

// cropRect converts the editor-selected fractional crop into the image
// service's rect parameter. Needs the intrinsic dimensions to resolve
// fractions to pixels.
func cropRect(img *content.Image) (string, bool) {
	crop := img.Crop
	if crop == nil {
		return "", false
	}
	if crop.Top == 0 && crop.Bottom == 0 && crop.Left == 0 && crop.Right == 0 {
		return "", false
	}
	dims := img.Asset.Metadata.Dimensions
	if dims.Width <= 0 || dims.Height <= 0 {
		return "", false
	}

	left := int(crop.Left * float64(dims.Width))
	top := int(crop.Top * float64(dims.Height))
	width := dims.Width - left - int(crop.Right*float64(dims.Width))
	height := dims.Height - top - int(crop.Bottom*float64(dims.Height))
	if width <= 0 || height <= 0 {
		return "", false
	}
	return fmt.Sprintf("%d,%d,%d,%d", left, top, width, height), true
}

// dimensionToken matches the {width}x{height} segment of an asset id,
// e.g. "image-abc123-1200x800-jpg".
var dimensionToken = regexp.MustCompile(`-(\d+)x(\d+)-`)

// Dimensions extracts intrinsic dimensions from a raw asset identifier.
// A malformed identifier degrades to {0, 0, 1} rather than erroring; the
// value is display-only best effort.
func Dimensions(assetID string) content.ImageDimensions {
	fallback := content.ImageDimensions{Width: 0, Height: 0, AspectRatio: 1}

	m := dimensionToken.FindStringSubmatch(assetID)
	if m == nil {
		return fallback
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	height, err := strconv.Atoi(m[2])
	if err != nil || height == 0 {
		return fallback
	}

	return content.ImageDimensions{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
	}
}

// BlurPlaceholder returns the precomputed low-quality placeholder for an
// image, if the asset carries one. Absence is a normal state, not an error.
func BlurPlaceholder(img *content.Image) (string, bool) {
	if img == nil || img.Asset == nil || img.Asset.Metadata.LQIP == "" {
		return "", false
	}
	return img.Asset.Metadata.LQIP, true
}

// Variant names a responsive layout slot for the sizes attribute.
type Variant string

// Layout variants.
const (
	VariantHero      Variant = "hero"
	VariantCard      Variant = "card"
	VariantGallery   Variant = "gallery"
	VariantThumbnail Variant = "thumbnail"
	VariantFull      Variant = "full"
)

// ResponsiveSizes returns the sizes attribute for a layout variant, so the
// browser picks the right source from the srcset.
func ResponsiveSizes(v Variant) string {
	switch v {
	case VariantHero, VariantFull:
		return "100vw"
	case VariantCard:
		return "(max-width: 640px) 100vw, (max-width: 1024px) 50vw, 33vw"
	case VariantGallery:
		return "(max-width: 768px) 100vw, (max-width: 1280px) 50vw, 640px"
	case VariantThumbnail:
		return "(max-width: 640px) 50vw, 200px"
	default:
		return "100vw"
	}
}
