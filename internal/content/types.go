// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content defines the typed query library for the Content Lake:
// projection fragments, named GROQ queries, one result type per query, and
// the cache-backed Service that executes them.
package content

import "time"

// ImageDimensions are the intrinsic pixel dimensions of a stored asset.
type ImageDimensions struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
}

// ImageMetadata is the precomputed asset metadata used for responsive
// loading. LQIP is a base64 low-quality placeholder; empty when the asset
// has none.
type ImageMetadata struct {
	LQIP       string          `json:"lqip"`
	Dimensions ImageDimensions `json:"dimensions"`
}

// ImageAsset is an expanded asset reference.
type ImageAsset struct {
	ID       string        `json:"_id"`
	URL      string        `json:"url"`
	Metadata ImageMetadata `json:"metadata"`
}

// Hotspot marks the region of an image that must survive cropping.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Crop is the editor-selected crop, as fractional insets.
type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Image is a stored image reference with accessibility and crop data.
// Alt is required by schema validation; application code may still receive
// legacy documents without it and must not assume it is set.
type Image struct {
	Asset   *ImageAsset `json:"asset"`
	Alt     string      `json:"alt"`
	Hotspot *Hotspot    `json:"hotspot"`
	Crop    *Crop       `json:"crop"`
}

// SEO is the per-page metadata override embedded in every document type.
type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OGImage         *Image `json:"ogImage"`
}

// SocialLink is one external profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// MenuItem is one entry of the main navigation.
type MenuItem struct {
	Label        string `json:"label"`
	Link         string `json:"link"`
	OpenInNewTab bool   `json:"openInNewTab"`
}

// PopupContent is a reusable click-triggered detail panel, referenced by
// zero or more annotated images.
type PopupContent struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LinkURL     string   `json:"linkUrl"`
	LinkLabel   string   `json:"linkLabel"`
	Tags        []string `json:"tags"`
}

// ImageWithPopup is an image plus an optional interactive annotation,
// embedded in rich-text content and project galleries.
type ImageWithPopup struct {
	Key     string        `json:"_key"`
	Image   *Image        `json:"image"`
	Caption string        `json:"caption"`
	Popup   *PopupContent `json:"popup"`
	Size    string        `json:"size"` // "small", "medium", "large", "full"
}

// Block is one unit of rich-text content: either a markdown text block or
// an embedded annotated image.
type Block struct {
	Key   string          `json:"_key"`
	Type  string          `json:"_type"` // "block" or "imageWithPopup"
	Text  string          `json:"text,omitempty"`
	Image *ImageWithPopup `json:"image,omitempty"`
}

// SiteSettings is the global site metadata singleton.
type SiteSettings struct {
	SiteName    string       `json:"siteName"`
	Logo        *Image       `json:"logo"`
	Favicon     *Image       `json:"favicon"`
	DefaultSEO  *SEO         `json:"defaultSeo"`
	SocialLinks []SocialLink `json:"socialLinks"`
	FooterText  string       `json:"footerText"`
	AnalyticsID string       `json:"analyticsId"`
}

// Navigation is the main menu singleton.
type Navigation struct {
	MainMenu []MenuItem `json:"mainMenu"`
}

// Homepage is the landing page singleton.
type Homepage struct {
	HeroHeading             string `json:"heroHeading"`
	HeroSubheading          string `json:"heroSubheading"`
	HeroImage               *Image `json:"heroImage"`
	IntroText               string `json:"introText"`
	FeaturedPostsHeading    string `json:"featuredPostsHeading"`
	FeaturedProjectsHeading string `json:"featuredProjectsHeading"`
	CTAText                 string `json:"ctaText"`
	CTALink                 string `json:"ctaLink"`
	SEO                     *SEO   `json:"seo"`
}

// Credential is one entry of the ordered credential list on the about page.
type Credential struct {
	Year  string `json:"year"`
	Title string `json:"title"`
}

// AboutPage is the biography singleton.
type AboutPage struct {
	Heading      string       `json:"heading"`
	ProfileImage *Image       `json:"profileImage"`
	Name         string       `json:"name"`
	Tagline      string       `json:"tagline"`
	Bio          []Block      `json:"bio"`
	Credentials  []Credential `json:"credentials"`
	Clients      []string     `json:"clients"`
	SEO          *SEO         `json:"seo"`
}

// ContactPage is the contact singleton.
type ContactPage struct {
	Heading     string       `json:"heading"`
	Intro       string       `json:"intro"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	SocialLinks []SocialLink `json:"socialLinks"`
	FormEnabled bool         `json:"formEnabled"`
	SEO         *SEO         `json:"seo"`
}

// BlogPostListItem carries the fields a listing view needs.
type BlogPostListItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	CoverImage  *Image    `json:"coverImage"`
	Excerpt     string    `json:"excerpt"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
}

// BlogPostDetail is the full document for a detail page.
type BlogPostDetail struct {
	BlogPostListItem
	Content []Block `json:"content"`
	SEO     *SEO    `json:"seo"`
}

// ProjectCategory is the closed category enum for portfolio items.
type ProjectCategory string

// Project categories. The set is closed by schema validation.
const (
	CategoryEditorial ProjectCategory = "editorial"
	CategoryCampaign  ProjectCategory = "campaign"
	CategoryLookbook  ProjectCategory = "lookbook"
	CategoryStyling   ProjectCategory = "styling"
	CategoryPersonal  ProjectCategory = "personal"
)

// Categories lists every valid project category in display order.
func Categories() []ProjectCategory {
	return []ProjectCategory{
		CategoryEditorial,
		CategoryCampaign,
		CategoryLookbook,
		CategoryStyling,
		CategoryPersonal,
	}
}

// IsValid reports whether c is one of the closed category values.
func (c ProjectCategory) IsValid() bool {
	switch c {
	case CategoryEditorial, CategoryCampaign, CategoryLookbook, CategoryStyling, CategoryPersonal:
		return true
	}
	return false
}

// ProjectListItem carries the fields the gallery listing needs.
type ProjectListItem struct {
	ID         string          `json:"_id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	CoverImage *Image          `json:"coverImage"`
	Category   ProjectCategory `json:"category"`
	Client     string          `json:"client"`
	Date       time.Time       `json:"date"`
	Featured   bool            `json:"featured"`
}

// ProjectDetail is the full portfolio document for a detail page.
type ProjectDetail struct {
	ProjectListItem
	Description []Block          `json:"description"`
	Images      []ImageWithPopup `json:"images"`
	SEO         *SEO             `json:"seo"`
}

// ProjectRef is the minimal shape used for previous/next navigation.
type ProjectRef struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	CoverImage *Image `json:"coverImage"`
}

// AdjacentProjects holds the nearest older and newer siblings of a
// project. Either side is nil at the ends of the timeline.
type AdjacentProjects struct {
	Previous *ProjectRef `json:"previous"`
	Next     *ProjectRef `json:"next"`
}

// CategoryCounts aggregates project counts per category. A dataset with no
// projects yields all zeros, not an error.
type CategoryCounts struct {
	All       int `json:"all"`
	Editorial int `json:"editorial"`
	Campaign  int `json:"campaign"`
	Lookbook  int `json:"lookbook"`
	Styling   int `json:"styling"`
	Personal  int `json:"personal"`
}

// SearchResults is the fan-out text match across posts and projects.
type SearchResults struct {
	Posts    []BlogPostListItem `json:"posts"`
	Projects []ProjectListItem  `json:"projects"`
}

// SitemapEntry feeds sitemap assembly and static-path precomputation.
type SitemapEntry struct {
	Type      string    `json:"_type"`
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"_updatedAt"`
}
