// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Named GROQ queries, one per page/view concern. Pagination is half-open
// [$start...$end), zero-indexed; out-of-range windows yield an empty list.
// Singleton queries select [0] and return null when never authored.

// SiteSettingsQuery fetches the global site metadata singleton.
var SiteSettingsQuery = `*[_type == "siteSettings"][0]{
  siteName,
  "logo": logo ` + ImageProjection() + `,
  "favicon": favicon ` + ImageProjection() + `,
  "defaultSeo": defaultSeo ` + SEOProjection() + `,
  socialLinks[]{ platform, url },
  footerText,
  analyticsId
}`

// NavigationQuery fetches the main menu singleton.
var NavigationQuery = `*[_type == "navigation"][0]{
  mainMenu[]{ label, link, openInNewTab }
}`

// HomepageQuery fetches the landing page singleton.
var HomepageQuery = `*[_type == "homepage"][0]{
  heroHeading,
  heroSubheading,
  "heroImage": heroImage ` + ImageProjection() + `,
  introText,
  featuredPostsHeading,
  featuredProjectsHeading,
  ctaText,
  ctaLink,
  "seo": seo ` + SEOProjection() + `
}`

// AboutPageQuery fetches the biography singleton.
var AboutPageQuery = `*[_type == "aboutPage"][0]{
  heading,
  "profileImage": profileImage ` + ImageProjection() + `,
  name,
  tagline,
  bio[]` + BlockProjection() + `,
  credentials[]{ year, title },
  clients,
  "seo": seo ` + SEOProjection() + `
}`

// ContactPageQuery fetches the contact singleton.
var ContactPageQuery = `*[_type == "contactPage"][0]{
  heading,
  intro,
  email,
  phone,
  location,
  socialLinks[]{ platform, url },
  formEnabled,
  "seo": seo ` + SEOProjection() + `
}`

// FeaturedPostsQuery fetches the three most recent featured posts for the
// homepage.
var FeaturedPostsQuery = `*[_type == "blogPost" && featured == true] | order(publishedAt desc) [0...3] {
  ` + blogPostListFields() + `
}`

// FeaturedProjectsQuery fetches the three most recent featured projects.
var FeaturedProjectsQuery = `*[_type == "project" && featured == true] | order(date desc) [0...3] {
  ` + projectListFields() + `
}`

// BlogPostsQuery pages through posts by descending publish date.
// Params: $start, $end.
var BlogPostsQuery = `*[_type == "blogPost"] | order(publishedAt desc) [$start...$end] {
  ` + blogPostListFields() + `
}`

// BlogPostCountQuery is the companion total for pagination.
var BlogPostCountQuery = `count(*[_type == "blogPost"])`

// BlogPostBySlugQuery fetches one post by exact, case-sensitive slug.
// Params: $slug.
var BlogPostBySlugQuery = `*[_type == "blogPost" && slug.current == $slug][0]{
  ` + blogPostListFields() + `,
  content[]` + BlockProjection() + `,
  "seo": seo ` + SEOProjection() + `
}`

// BlogPostSlugsQuery lists every non-null post slug for static-path
// precomputation.
var BlogPostSlugsQuery = `*[_type == "blogPost" && defined(slug.current)].slug.current`

// BlogPostsByTagQuery pages through posts carrying a tag.
// Params: $tag, $start, $end.
var BlogPostsByTagQuery = `*[_type == "blogPost" && $tag in tags] | order(publishedAt desc) [$start...$end] {
  ` + blogPostListFields() + `
}`

// BlogPostsByTagCountQuery is the companion total for tag pages.
// Params: $tag.
var BlogPostsByTagCountQuery = `count(*[_type == "blogPost" && $tag in tags])`

// AllBlogTagsQuery collects the distinct tag vocabulary for the tag cloud.
var AllBlogTagsQuery = `array::unique(*[_type == "blogPost"].tags[])`

// RelatedPostsQuery fetches up to three other posts sharing a tag with the
// current one. Params: $slug (excluded), $tags.
var RelatedPostsQuery = `*[_type == "blogPost" && slug.current != $slug && count(tags[@ in $tags]) > 0] | order(publishedAt desc) [0...3] {
  ` + blogPostListFields() + `
}`

// ProjectsQuery pages through projects by descending date.
// Params: $start, $end.
var ProjectsQuery = `*[_type == "project"] | order(date desc) [$start...$end] {
  ` + projectListFields() + `
}`

// ProjectCountQuery is the companion total for the gallery.
var ProjectCountQuery = `count(*[_type == "project"])`

// ProjectsByCategoryQuery pages through one category.
// Params: $category, $start, $end.
var ProjectsByCategoryQuery = `*[_type == "project" && category == $category] | order(date desc) [$start...$end] {
  ` + projectListFields() + `
}`

// ProjectBySlugQuery fetches one project with its annotated gallery, the
// popup references resolved. Params: $slug.
var ProjectBySlugQuery = `*[_type == "project" && slug.current == $slug][0]{
  ` + projectListFields() + `,
  description[]` + BlockProjection() + `,
  images[]` + ImageWithPopupProjection() + `,
  "seo": seo ` + SEOProjection() + `
}`

// ProjectSlugsQuery lists every non-null project slug.
var ProjectSlugsQuery = `*[_type == "project" && defined(slug.current)].slug.current`

// ProjectCountByCategoryQuery aggregates counts per category, plus the
// overall total under "all". An empty dataset yields all zeros.
var ProjectCountByCategoryQuery = `{
  "all": count(*[_type == "project"]),
  "editorial": count(*[_type == "project" && category == "editorial"]),
  "campaign": count(*[_type == "project" && category == "campaign"]),
  "lookbook": count(*[_type == "project" && category == "lookbook"]),
  "styling": count(*[_type == "project" && category == "styling"]),
  "personal": count(*[_type == "project" && category == "personal"])
}`

// AdjacentProjectsQuery finds the nearest-next-older and nearest-next-newer
// siblings of a project. Ties on date break by _id so prev/next navigation
// is deterministic; the current document is excluded by slug.
// Params: $date, $slug.
var AdjacentProjectsQuery = `{
  "previous": *[_type == "project" && slug.current != $slug && date <= $date] | order(date desc, _id desc) [0] {
    ` + projectRefFields() + `
  },
  "next": *[_type == "project" && slug.current != $slug && date >= $date] | order(date asc, _id asc) [0] {
    ` + projectRefFields() + `
  }
}`

// PopupContentByIDQuery fetches one popup document by id. Params: $id.
var PopupContentByIDQuery = `*[_type == "popupContent" && _id == $id][0]` + PopupProjection()

// AllPopupContentQuery lists every popup document.
var AllPopupContentQuery = `*[_type == "popupContent"] | order(title asc) ` + PopupProjection()

// SearchQuery fans out a text match across posts and projects, each side
// independently capped and ordered by recency. Params: $searchTerm.
var SearchQuery = `{
  "posts": *[_type == "blogPost" && (title match $searchTerm || excerpt match $searchTerm)] | order(publishedAt desc) [0...10] {
    ` + blogPostListFields() + `
  },
  "projects": *[_type == "project" && (title match $searchTerm || client match $searchTerm)] | order(date desc) [0...10] {
    ` + projectListFields() + `
  }
}`

// SitemapQuery lists the slug and update timestamp of every sluggable
// published document.
var SitemapQuery = `*[_type in ["blogPost", "project"] && defined(slug.current)]{
  _type,
  "slug": slug.current,
  _updatedAt
}`
