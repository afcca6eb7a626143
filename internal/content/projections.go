// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Projection fragments are composed by function instead of ad hoc string
// concatenation at use sites. Fragments contain no parameters; parameter
// values travel separately with each request, never inside query text.

// ImageProjection expands an image field: asset reference, delivery URL,
// responsive-loading metadata, accessibility and crop data.
func ImageProjection() string {
	return `{
  "asset": asset->{
    _id,
    url,
    metadata { lqip, dimensions { width, height, aspectRatio } }
  },
  alt,
  hotspot,
  crop
}`
}

// SEOProjection expands the embedded per-page metadata override.
func SEOProjection() string {
	return `{
  metaTitle,
  metaDescription,
  "ogImage": ogImage ` + ImageProjection() + `
}`
}

// PopupProjection expands a popup content document.
func PopupProjection() string {
	return `{
  _id,
  title,
  description,
  linkUrl,
  linkLabel,
  tags
}`
}

// ImageWithPopupProjection expands an annotated image, resolving the
// optional popup reference.
func ImageWithPopupProjection() string {
	return `{
  _key,
  "image": image ` + ImageProjection() + `,
  caption,
  "popup": popup->` + PopupProjection() + `,
  size
}`
}

// BlockProjection expands one rich-text block. Text blocks carry markdown
// source; imageWithPopup blocks nest the annotated image.
func BlockProjection() string {
	return `{
  _key,
  _type,
  _type == "block" => { text },
  _type == "imageWithPopup" => { "image": @ ` + ImageWithPopupProjection() + ` }
}`
}

// blogPostListFields are the fields every blog listing view needs.
func blogPostListFields() string {
	return `_id,
  title,
  "slug": slug.current,
  "coverImage": coverImage ` + ImageProjection() + `,
  excerpt,
  publishedAt,
  tags,
  featured`
}

// projectListFields are the fields the gallery listing needs.
func projectListFields() string {
	return `_id,
  title,
  "slug": slug.current,
  "coverImage": coverImage ` + ImageProjection() + `,
  category,
  client,
  date,
  featured`
}

// projectRefFields are the minimal fields for previous/next navigation.
func projectRefFields() string {
	return `title,
  "slug": slug.current,
  "coverImage": coverImage ` + ImageProjection()
}
