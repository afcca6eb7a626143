// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/cache"
)

// Service executes the named queries through the cache-backed fetch
// wrapper, attaching the tag vocabulary the revalidation webhook
// invalidates against. All collaborators are injected; the service holds
// no hidden global state.
type Service struct {
	store  cache.Store
	client cache.Querier
	ttl    time.Duration
	logger *slog.Logger
}

// NewService creates a content service. ttl is the default freshness
// window; zero means cache.DefaultFreshness.
func NewService(store cache.Store, client cache.Querier, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, client: client, ttl: ttl, logger: logger}
}

// fetch runs one cached query with the service defaults.
func fetch[T any](ctx context.Context, s *Service, query string, params map[string]any, tags ...string) (*T, error) {
	return cache.Fetch[T](ctx, s.store, s.client, query, params, cache.FetchOptions{
		TTL:  s.ttl,
		Tags: tags,
	})
}

// fetchList runs one cached query returning a slice, mapping an absent
// result to an empty list.
func fetchList[T any](ctx context.Context, s *Service, query string, params map[string]any, tags ...string) ([]T, error) {
	items, err := fetch[[]T](ctx, s, query, params, tags...)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return *items, nil
}

// fetchCount runs one cached aggregate count query.
func fetchCount(ctx context.Context, s *Service, query string, params map[string]any, tags ...string) (int, error) {
	n, err := fetch[int](ctx, s, query, params, tags...)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, nil
	}
	return *n, nil
}

// pageParams clamps a half-open pagination window. A degenerate window is
// normalized to an empty one instead of erroring.
func pageParams(start, end int) map[string]any {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return map[string]any{"start": start, "end": end}
}

// SiteSettings returns the global settings singleton, or nil if never
// authored.
func (s *Service) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	return fetch[SiteSettings](ctx, s, SiteSettingsQuery, nil, "siteSettings", cache.LayoutTag)
}

// Navigation returns the main menu singleton, or nil if never authored.
func (s *Service) Navigation(ctx context.Context) (*Navigation, error) {
	return fetch[Navigation](ctx, s, NavigationQuery, nil, "navigation", cache.LayoutTag)
}

// Homepage returns the landing page singleton, or nil if never authored.
func (s *Service) Homepage(ctx context.Context) (*Homepage, error) {
	return fetch[Homepage](ctx, s, HomepageQuery, nil, "homepage", cache.PathTag("/"))
}

// AboutPage returns the biography singleton, or nil if never authored.
func (s *Service) AboutPage(ctx context.Context) (*AboutPage, error) {
	return fetch[AboutPage](ctx, s, AboutPageQuery, nil, "aboutPage", cache.PathTag("/about"))
}

// ContactPage returns the contact singleton, or nil if never authored.
func (s *Service) ContactPage(ctx context.Context) (*ContactPage, error) {
	return fetch[ContactPage](ctx, s, ContactPageQuery, nil, "contactPage", cache.PathTag("/contact"))
}

// FeaturedPosts returns up to three featured posts for the homepage.
func (s *Service) FeaturedPosts(ctx context.Context) ([]BlogPostListItem, error) {
	return fetchList[BlogPostListItem](ctx, s, FeaturedPostsQuery, nil, "blogPost", cache.PathTag("/"))
}

// FeaturedProjects returns up to three featured projects for the homepage.
func (s *Service) FeaturedProjects(ctx context.Context) ([]ProjectListItem, error) {
	return fetchList[ProjectListItem](ctx, s, FeaturedProjectsQuery, nil, "project", cache.PathTag("/"))
}

// BlogPosts returns the [start,end) window of posts by descending publish
// date. Windows beyond the available count yield a shorter (or empty) list.
func (s *Service) BlogPosts(ctx context.Context, start, end int) ([]BlogPostListItem, error) {
	return fetchList[BlogPostListItem](ctx, s, BlogPostsQuery, pageParams(start, end), "blogPost", cache.PathTag("/blog"))
}

// BlogPostCount returns the total number of posts.
func (s *Service) BlogPostCount(ctx context.Context) (int, error) {
	return fetchCount(ctx, s, BlogPostCountQuery, nil, "blogPost")
}

// BlogPostBySlug returns one post by exact slug, or nil when absent.
func (s *Service) BlogPostBySlug(ctx context.Context, slug string) (*BlogPostDetail, error) {
	return fetch[BlogPostDetail](ctx, s, BlogPostBySlugQuery,
		map[string]any{"slug": slug},
		"blogPost", cache.PathTag("/blog/"+slug))
}

// BlogPostSlugs returns every post slug for static-path precomputation.
func (s *Service) BlogPostSlugs(ctx context.Context) ([]string, error) {
	return fetchList[string](ctx, s, BlogPostSlugsQuery, nil, "blogPost")
}

// BlogPostsByTag returns the [start,end) window of posts carrying a tag.
// An empty result is a valid state, distinct from a missing document.
func (s *Service) BlogPostsByTag(ctx context.Context, tag string, start, end int) ([]BlogPostListItem, error) {
	params := pageParams(start, end)
	params["tag"] = tag
	return fetchList[BlogPostListItem](ctx, s, BlogPostsByTagQuery, params, "blogPost", cache.PathTag("/blog"))
}

// BlogPostCountByTag returns the number of posts carrying a tag.
func (s *Service) BlogPostCountByTag(ctx context.Context, tag string) (int, error) {
	return fetchCount(ctx, s, BlogPostsByTagCountQuery, map[string]any{"tag": tag}, "blogPost")
}

// AllBlogTags returns the distinct tag vocabulary.
func (s *Service) AllBlogTags(ctx context.Context) ([]string, error) {
	return fetchList[string](ctx, s, AllBlogTagsQuery, nil, "blogPost")
}

// RelatedPosts returns up to three posts sharing a tag with the given one.
func (s *Service) RelatedPosts(ctx context.Context, slug string, tags []string) ([]BlogPostListItem, error) {
	if tags == nil {
		tags = []string{}
	}
	return fetchList[BlogPostListItem](ctx, s, RelatedPostsQuery,
		map[string]any{"slug": slug, "tags": tags}, "blogPost")
}

// Projects returns the [start,end) window of projects by descending date.
func (s *Service) Projects(ctx context.Context, start, end int) ([]ProjectListItem, error) {
	return fetchList[ProjectListItem](ctx, s, ProjectsQuery, pageParams(start, end), "project", cache.PathTag("/projects"))
}

// ProjectCount returns the total number of projects.
func (s *Service) ProjectCount(ctx context.Context) (int, error) {
	return fetchCount(ctx, s, ProjectCountQuery, nil, "project")
}

// ProjectsByCategory returns the [start,end) window of one category.
func (s *Service) ProjectsByCategory(ctx context.Context, category ProjectCategory, start, end int) ([]ProjectListItem, error) {
	params := pageParams(start, end)
	params["category"] = string(category)
	return fetchList[ProjectListItem](ctx, s, ProjectsByCategoryQuery, params, "project", cache.PathTag("/projects"))
}

// ProjectBySlug returns one project by exact slug, or nil when absent.
func (s *Service) ProjectBySlug(ctx context.Context, slug string) (*ProjectDetail, error) {
	return fetch[ProjectDetail](ctx, s, ProjectBySlugQuery,
		map[string]any{"slug": slug},
		"project", cache.PathTag("/projects/"+slug))
}

// ProjectSlugs returns every project slug for static-path precomputation.
func (s *Service) ProjectSlugs(ctx context.Context) ([]string, error) {
	return fetchList[string](ctx, s, ProjectSlugsQuery, nil, "project")
}

// ProjectCountByCategory returns per-category totals; a dataset with no
// projects yields all zeros.
func (s *Service) ProjectCountByCategory(ctx context.Context) (CategoryCounts, error) {
	counts, err := fetch[CategoryCounts](ctx, s, ProjectCountByCategoryQuery, nil, "project")
	if err != nil {
		return CategoryCounts{}, err
	}
	if counts == nil {
		return CategoryCounts{}, nil
	}
	return *counts, nil
}

// AdjacentProjects returns the nearest older and newer siblings of the
// project with the given date, excluding it by slug. Either side may be
// nil at the ends of the timeline.
func (s *Service) AdjacentProjects(ctx context.Context, date time.Time, excludeSlug string) (AdjacentProjects, error) {
	adj, err := fetch[AdjacentProjects](ctx, s, AdjacentProjectsQuery,
		map[string]any{"date": date.Format("2006-01-02"), "slug": excludeSlug},
		"project")
	if err != nil {
		return AdjacentProjects{}, err
	}
	if adj == nil {
		return AdjacentProjects{}, nil
	}
	return *adj, nil
}

// PopupContentByID returns one popup document, or nil when absent.
func (s *Service) PopupContentByID(ctx context.Context, id string) (*PopupContent, error) {
	return fetch[PopupContent](ctx, s, PopupContentByIDQuery,
		map[string]any{"id": id}, "popupContent")
}

// AllPopupContent returns every popup document.
func (s *Service) AllPopupContent(ctx context.Context) ([]PopupContent, error) {
	return fetchList[PopupContent](ctx, s, AllPopupContentQuery, nil, "popupContent")
}

// Search fans a text match across posts and projects. The term uses the
// query engine's match semantics; a trailing wildcard gives prefix
// behavior.
func (s *Service) Search(ctx context.Context, term string) (SearchResults, error) {
	results, err := fetch[SearchResults](ctx, s, SearchQuery,
		map[string]any{"searchTerm": term + "*"},
		"blogPost", "project")
	if err != nil {
		return SearchResults{}, err
	}
	if results == nil {
		return SearchResults{}, nil
	}
	return *results, nil
}

// SitemapEntries lists slug and update time for every sluggable document.
func (s *Service) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	return fetchList[SitemapEntry](ctx, s, SitemapQuery, nil, "blogPost", "project")
}
