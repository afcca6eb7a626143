// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

// Categories is the closed category list for portfolio projects.
var Categories = []string{"editorial", "campaign", "lookbook", "styling", "personal"}

// SocialPlatforms is the closed platform list for social links.
var SocialPlatforms = []string{"instagram", "linkedin", "pinterest", "tiktok", "youtube", "x"}

// ImageSizes is the closed size-variant list for annotated images.
var ImageSizes = []string{"small", "medium", "large", "full"}

// Advisory SEO length caps; exceeding them warns but never blocks.
const (
	MetaTitleMaxLength       = 60
	MetaDescriptionMaxLength = 160
	SlugMaxLength            = 96
)

// seoField is the embedded SEO override shared by every document type.
func seoField() Field {
	return Field{Name: "seo", Title: "SEO", Type: FieldObject, Of: "seo"}
}

func imageField(name, title string, required bool) Field {
	return Field{Name: name, Title: title, Type: FieldImage, Required: required}
}

// Types returns every declared content type, documents first.
func Types() []Type {
	return []Type{
		{
			Name:      "siteSettings",
			Title:     "Site Settings",
			Kind:      KindDocument,
			Singleton: true,
			Fields: []Field{
				{Name: "siteName", Title: "Site Name", Type: FieldString, Required: true},
				imageField("logo", "Logo", false),
				imageField("favicon", "Favicon", false),
				{Name: "defaultSeo", Title: "Default SEO", Type: FieldObject, Of: "seo"},
				{Name: "socialLinks", Title: "Social Links", Type: FieldArray, Of: "socialLink"},
				{Name: "footerText", Title: "Footer Text", Type: FieldText},
				{Name: "analyticsId", Title: "Analytics ID", Type: FieldString},
			},
			Preview: Preview{Static: "Site Settings"},
		},
		{
			Name:      "navigation",
			Title:     "Navigation",
			Kind:      KindDocument,
			Singleton: true,
			Fields: []Field{
				{Name: "mainMenu", Title: "Main Menu", Type: FieldArray, Of: "menuItem"},
			},
			Preview: Preview{Static: "Navigation"},
		},
		{
			Name:      "homepage",
			Title:     "Homepage",
			Kind:      KindDocument,
			Singleton: true,
			Fields: []Field{
				{Name: "heroHeading", Title: "Hero Heading", Type: FieldString, Required: true},
				{Name: "heroSubheading", Title: "Hero Subheading", Type: FieldString},
				imageField("heroImage", "Hero Image", true),
				{Name: "introText", Title: "Intro Text", Type: FieldText},
				{Name: "featuredPostsHeading", Title: "Featured Posts Heading", Type: FieldString, Default: "From the Journal"},
				{Name: "featuredProjectsHeading", Title: "Featured Projects Heading", Type: FieldString, Default: "Selected Work"},
				{Name: "ctaText", Title: "CTA Text", Type: FieldString},
				{Name: "ctaLink", Title: "CTA Link", Type: FieldString},
				seoField(),
			},
			Preview: Preview{Static: "Homepage"},
		},
		{
			Name:      "aboutPage",
			Title:     "About Page",
			Kind:      KindDocument,
			Singleton: true,
			Fields: []Field{
				{Name: "heading", Title: "Heading", Type: FieldString, Required: true},
				imageField("profileImage", "Profile Image", true),
				{Name: "name", Title: "Name", Type: FieldString, Required: true},
				{Name: "tagline", Title: "Tagline", Type: FieldString},
				{Name: "bio", Title: "Bio", Type: FieldRichText},
				{Name: "credentials", Title: "Credentials", Type: FieldArray, Of: "credential"},
				{Name: "clients", Title: "Clients", Type: FieldArray, Of: "string"},
				seoField(),
			},
			Preview: Preview{Static: "About Page"},
		},
		{
			Name:      "contactPage",
			Title:     "Contact Page",
			Kind:      KindDocument,
			Singleton: true,
			Fields: []Field{
				{Name: "heading", Title: "Heading", Type: FieldString, Required: true},
				{Name: "intro", Title: "Intro", Type: FieldText},
				{Name: "email", Title: "Email", Type: FieldString, Required: true},
				{Name: "phone", Title: "Phone", Type: FieldString},
				{Name: "location", Title: "Location", Type: FieldString},
				{Name: "socialLinks", Title: "Social Links", Type: FieldArray, Of: "socialLink"},
				{Name: "formEnabled", Title: "Form Enabled", Type: FieldBoolean, Default: true},
				seoField(),
			},
			Preview: Preview{Static: "Contact Page"},
		},
		{
			Name:  "blogPost",
			Title: "Blog Post",
			Kind:  KindDocument,
			Fields: []Field{
				{Name: "title", Title: "Title", Type: FieldString, Required: true},
				{Name: "slug", Title: "Slug", Type: FieldSlug, Required: true,
					Options: &FieldOptions{SlugSource: "title", MaxLength: SlugMaxLength}},
				imageField("coverImage", "Cover Image", true),
				{Name: "excerpt", Title: "Excerpt", Type: FieldText,
					Options: &FieldOptions{MaxLength: 300, Advisory: true}},
				{Name: "content", Title: "Content", Type: FieldRichText, Required: true},
				{Name: "publishedAt", Title: "Published At", Type: FieldDatetime, Required: true},
				{Name: "tags", Title: "Tags", Type: FieldArray, Of: "string"},
				{Name: "featured", Title: "Featured", Type: FieldBoolean, Default: false},
				seoField(),
			},
			Preview: Preview{Title: "title", Subtitle: "publishedAt", Media: "coverImage"},
		},
		{
			Name:  "project",
			Title: "Project",
			Kind:  KindDocument,
			Fields: []Field{
				{Name: "title", Title: "Title", Type: FieldString, Required: true},
				{Name: "slug", Title: "Slug", Type: FieldSlug, Required: true,
					Options: &FieldOptions{SlugSource: "title", MaxLength: SlugMaxLength}},
				imageField("coverImage", "Cover Image", true),
				{Name: "images", Title: "Gallery", Type: FieldArray, Of: "imageWithPopup"},
				{Name: "description", Title: "Description", Type: FieldRichText},
				{Name: "client", Title: "Client", Type: FieldString},
				{Name: "date", Title: "Date", Type: FieldDate, Required: true},
				{Name: "category", Title: "Category", Type: FieldString, Required: true,
					Options: &FieldOptions{List: Categories}},
				{Name: "featured", Title: "Featured", Type: FieldBoolean, Default: false},
				seoField(),
			},
			Preview: Preview{Title: "title", Subtitle: "category", Media: "coverImage"},
		},
		{
			Name:  "popupContent",
			Title: "Popup Content",
			Kind:  KindDocument,
			Fields: []Field{
				{Name: "title", Title: "Title", Type: FieldString, Required: true},
				{Name: "description", Title: "Description", Type: FieldText, Required: true},
				{Name: "linkUrl", Title: "Link URL", Type: FieldURL},
				{Name: "linkLabel", Title: "Link Label", Type: FieldString},
				{Name: "tags", Title: "Tags", Type: FieldArray, Of: "string"},
			},
			Preview: Preview{Title: "title", Subtitle: "description"},
		},

		// Embedded object types.
		{
			Name:  "imageWithPopup",
			Title: "Image with Popup",
			Kind:  KindObject,
			Fields: []Field{
				imageField("image", "Image", true),
				{Name: "caption", Title: "Caption", Type: FieldString},
				{Name: "popup", Title: "Popup", Type: FieldRef, To: "popupContent"},
				{Name: "size", Title: "Size", Type: FieldString, Default: "medium",
					Options: &FieldOptions{List: ImageSizes}},
			},
			Preview: Preview{Title: "caption", Media: "image"},
		},
		{
			Name:  "seo",
			Title: "SEO",
			Kind:  KindObject,
			Fields: []Field{
				{Name: "metaTitle", Title: "Meta Title", Type: FieldString,
					Options: &FieldOptions{MaxLength: MetaTitleMaxLength, Advisory: true}},
				{Name: "metaDescription", Title: "Meta Description", Type: FieldText,
					Options: &FieldOptions{MaxLength: MetaDescriptionMaxLength, Advisory: true}},
				imageField("ogImage", "Social Share Image", false),
			},
			Preview: Preview{Title: "metaTitle"},
		},
		{
			Name:  "socialLink",
			Title: "Social Link",
			Kind:  KindObject,
			Fields: []Field{
				{Name: "platform", Title: "Platform", Type: FieldString, Required: true,
					Options: &FieldOptions{List: SocialPlatforms}},
				{Name: "url", Title: "URL", Type: FieldURL, Required: true},
			},
			Preview: Preview{Title: "platform", Subtitle: "url"},
		},
		{
			Name:  "menuItem",
			Title: "Menu Item",
			Kind:  KindObject,
			Fields: []Field{
				{Name: "label", Title: "Label", Type: FieldString, Required: true},
				{Name: "link", Title: "Link", Type: FieldString, Required: true},
				{Name: "openInNewTab", Title: "Open in New Tab", Type: FieldBoolean, Default: false},
			},
			Preview: Preview{Title: "label", Subtitle: "link"},
		},
		{
			Name:  "credential",
			Title: "Credential",
			Kind:  KindObject,
			Fields: []Field{
				{Name: "year", Title: "Year", Type: FieldString},
				{Name: "title", Title: "Title", Type: FieldString, Required: true},
			},
			Preview: Preview{Title: "title", Subtitle: "year"},
		},
	}
}
