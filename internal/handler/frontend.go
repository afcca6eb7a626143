// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the public site.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/render"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/seo"
)

// PostsPerPage is the blog listing page size.
const PostsPerPage = 6

// ProjectsPerPage is the gallery listing page size.
const ProjectsPerPage = 9

// Frontend renders the public pages from queried content. Absent content
// renders a fallback/empty state, never an error page.
type Frontend struct {
	svc      *content.Service
	renderer *render.Renderer
	baseURL  string
	logger   *slog.Logger
}

// NewFrontend creates the public site handler.
func NewFrontend(svc *content.Service, renderer *render.Renderer, baseURL string, logger *slog.Logger) *Frontend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Frontend{
		svc:      svc,
		renderer: renderer,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		logger:   logger,
	}
}

// Routes mounts the public routes on the router.
func (h *Frontend) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/blog", h.BlogIndex)
	r.Get("/blog/tag/{tag}", h.BlogByTag)
	r.Get("/blog/{slug}", h.BlogPost)
	r.Get("/projects", h.Projects)
	r.Get("/projects/category/{category}", h.ProjectsByCategory)
	r.Get("/projects/{slug}", h.Project)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)
	r.Get("/search", h.Search)
	r.Get("/sitemap.xml", h.Sitemap)
}

// PageData is the view model shared by every page template.
type PageData struct {
	Meta     seo.Meta
	Settings *content.SiteSettings
	Nav      *content.Navigation

	// Per-page payload; the page template knows its concrete shape.
	Page any
}

// chrome loads the layout-wide singletons. Either may be nil; templates
// render minimal chrome in that case.
func (h *Frontend) chrome(r *http.Request) (*content.SiteSettings, *content.Navigation) {
	settings, err := h.svc.SiteSettings(r.Context())
	if err != nil {
		h.logger.Error("failed to load site settings", "error", err)
	}
	nav, err := h.svc.Navigation(r.Context())
	if err != nil {
		h.logger.Error("failed to load navigation", "error", err)
	}
	return settings, nav
}

// pageParam parses the 1-based ?page= query parameter.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Pagination holds pagination data for templates.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
}

// paginate computes the view model for a 1-based page over total items.
func paginate(basePath string, page, perPage, total int) Pagination {
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	p := Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = basePath + "?page=" + strconv.Itoa(page-1)
	}
	if p.HasNext {
		p.NextURL = basePath + "?page=" + strconv.Itoa(page+1)
	}
	return p
}

// window converts a 1-based page to the half-open [start,end) item window.
func window(page, perPage int) (start, end int) {
	start = (page - 1) * perPage
	return start, start + perPage
}

// HomePage is the homepage view model.
type HomePage struct {
	Home             *content.Homepage
	FeaturedPosts    []content.BlogPostListItem
	FeaturedProjects []content.ProjectListItem
}

// Home renders the landing page. A never-authored homepage document
// renders the coming-soon empty state.
func (h *Frontend) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, nav := h.chrome(r)

	home, err := h.svc.Homepage(ctx)
	if err != nil {
		h.serverError(w, "failed to load homepage", err)
		return
	}

	page := HomePage{Home: home}
	if home != nil {
		if page.FeaturedPosts, err = h.svc.FeaturedPosts(ctx); err != nil {
			h.serverError(w, "failed to load featured posts", err)
			return
		}
		if page.FeaturedProjects, err = h.svc.FeaturedProjects(ctx); err != nil {
			h.serverError(w, "failed to load featured projects", err)
			return
		}
	}

	var pageSEO *content.SEO
	title := ""
	if home != nil {
		pageSEO = home.SEO
		title = home.HeroHeading
	}
	h.renderer.HTML(w, http.StatusOK, "home", PageData{
		Meta:     seo.Resolve(pageSEO, settings, title, h.baseURL+"/"),
		Settings: settings,
		Nav:      nav,
		Page:     page,
	})
}

// BlogIndexPage is the blog listing view model.
type BlogIndexPage struct {
	Posts      []content.BlogPostListItem
	Tags       []string
	ActiveTag  string
	Pagination Pagination
}

// BlogIndex renders the paginated journal listing.
func (h *Frontend) BlogIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, nav := h.chrome(r)

	page := pageParam(r)
	start, end := window(page, PostsPerPage)

	posts, err := h.svc.BlogPosts(ctx, start, end)
	if err != nil {
		h.serverError(w, "failed to load posts", err)
		return
	}
	total, err := h.svc.BlogPostCount(ctx)
	if err != nil {
		h.serverError(w, "failed to count posts", err)
		return
	}
	tags, err := h.svc.AllBlogTags(ctx)
	if err != nil {
		h.serverError(w, "failed to load tags", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "blog_index", PageData{
		Meta:     seo.Resolve(nil, settings, "Journal", h.baseURL+"/blog"),
		Settings: settings,
		Nav:      nav,
		Page: BlogIndexPage{
			Posts:      posts,
			Tags:       tags,
			Pagination: paginate("/blog", page, PostsPerPage, total),
		},
	})
}

// BlogByTag renders the listing filtered to one tag. An empty result is a
// valid page, not a 404.
func (h *Frontend) BlogByTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, nav := h.chrome(r)
	tag := chi.URLParam(r, "tag")

	page := pageParam(r)
	start, end := window(page, PostsPerPage)

	posts, err := h.svc.BlogPostsByTag(ctx, tag, start, end)
	if err != nil {
		h.serverError(w, "failed to load posts by tag", err)
		return
	}
	total, err := h.svc.BlogPostCountByTag(ctx, tag)
	if err != nil {
		h.serverError(w, "failed to count posts by tag", err)
		return
	}
	tags, err := h.svc.AllBlogTags(ctx)
	if err != nil {
		h.serverError(w, "failed to load tags", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "blog_index", PageData{
		Meta:     seo.Resolve(nil, settings, "Journal: "+tag, h.baseURL+"/blog/tag/"+tag),
		Settings: settings,
		Nav:      nav,
		Page: BlogIndexPage{
			Posts:      posts,
			Tags:       tags,
			ActiveTag:  tag,
			Pagination: paginate("/blog/tag/"+tag, page, PostsPerPage, total),
		},
	})
}

// BlogPostPage is the post detail view model.
type BlogPostPage struct {
	Post    *content.BlogPostDetail
	Related []content.BlogPostListItem
}

// BlogPost renders one journal entry, or the not-found page when the slug
// matches nothing.
func (h *Frontend) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, nav := h.chrome(r)
	slug := chi.URLParam(r, "slug")

	post, err := h.svc.BlogPostBySlug(ctx, slug)
	if err != nil {
		h.serverError(w, "failed to load post", err)
		return
	}
	if post == nil {
		h.notFound(w, r, settings, nav)
		return
	}

	related, err := h.svc.RelatedPosts(ctx, slug, post.Tags)
	if err != nil {
		h.serverError(w, "failed to load related posts", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "blog_post", PageData{
		Meta:     seo.Resolve(post.SEO, settings, post.Title, h.baseURL+"/blog/"+slug),
		Settings: settings,
		Nav:      nav,
		Page:     BlogPostPage{Post: post, Related: related},
	})
}

// ProjectsPage is the gallery listing view model.
type ProjectsPage struct {
	Projects       []content.ProjectListItem
	Counts         content.CategoryCounts
	ActiveCategory content.ProjectCategory
	Pagination     Pagination
}

// Projects renders the portfolio gallery.
func (h *Frontend) Projects(w http.ResponseWriter, r *http.Request) {
	h.renderProjects(w, r, "")
}

// ProjectsByCategory renders the gallery filtered to one category.
// An unknown category value renders the not-found page; the set is closed.
func (h *Frontend) ProjectsByCategory(w http.ResponseWriter, r *http.Request) {
	category := content.ProjectCategory(chi.URLParam(r, "category"))
	if !category.IsValid() {
		settings, nav := h.chrome(r)
		h.notFound(w, r, settings, nav)
		return
	}
	h.renderProjects(w, r, category)
}

func (h *Frontend) renderProjects(w http.ResponseWriter, r *http.Request, category content.ProjectCategory) {
	ctx := r.Context()
	settings, nav := h.chrome(r)

	page := pageParam(r)
	start, end := window(page, ProjectsPerPage)

	var (
		projects []content.ProjectListItem
		err      error
	)
	basePath := "/projects"
	if category != "" {
		basePath = "/projects/category/" + string(category)
		projects, err = h.svc.ProjectsByCategory(ctx, category, start, end)
	} else {
		projects, err = h.svc.Projects(ctx, start, end)
	}
	if err != nil {
		h.serverError(w, "failed to load projects", err)
		return
	}

	counts, err := h.svc.ProjectCountByCategory(ctx)
	if err != nil {
		h.serverError(w, "failed to count projects", err)
		return
	}
	total := counts.All
	switch category {
	case content.CategoryEditorial:
		total = counts.Editorial
	case content.CategoryCampaign:
		total = counts.Campaign
	case content.CategoryLookbook:
		total = counts.Lookbook
	case content.CategoryStyling:
		total = counts.Styling
	case content.CategoryPersonal:
		total = counts.Personal
	}

	h.renderer.HTML(w, http.StatusOK, "projects", PageData{
		Meta:     seo.Resolve(nil, settings, "Work", h.baseURL+basePath),
		Settings: settings,
		Nav:      nav,
		Page: ProjectsPage{
			Projects:       projects,
			Counts:         counts,
			ActiveCategory: category,
			Pagination:     paginate(basePath, page, ProjectsPerPage, total),
		},
	})
}

// ProjectPage is the project detail view model.
type ProjectPage struct {
	Project  *content.ProjectDetail
	Adjacent content.AdjacentProjects
}

// Project renders one portfolio item with previous/next navigation.
func (h *Frontend) Project(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, nav := h.chrome(r)
	slug := chi.URLParam(r, "slug")

	project, err := h.svc.ProjectBySlug(ctx, slug)
	if err != nil {
		h.serverError(w, "failed to load project", err)
		return
	}
	if project == nil {
		h.notFound(w, r, settings, nav)
		return
	}

	adjacent, err := h.svc.AdjacentProjects(ctx, project.Date, slug)
	if err != nil {
		h.serverError(w, "failed to load adjacent projects", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "project", PageData{
		Meta:     seo.Resolve(project.SEO, settings, project.Title, h.baseURL+"/projects/"+slug),
		Settings: settings,
		Nav:      nav,
		Page:     ProjectPage{Project: project, Adjacent: adjacent},
	})
}

// About renders the biography page, or its empty state when never authored.
func (h *Frontend) About(w http.ResponseWriter, r *http.Request) {
	settings, nav := h.chrome(r)

	about, err := h.svc.AboutPage(r.Context())
	if err != nil {
		h.serverError(w, "failed to load about page", err)
		return
	}

	var pageSEO *content.SEO
	title := "About"
	if about != nil {
		pageSEO = about.SEO
		if about.Heading != "" {
			title = about.Heading
		}
	}
	h.renderer.HTML(w, http.StatusOK, "about", PageData{
		Meta:     seo.Resolve(pageSEO, settings, title, h.baseURL+"/about"),
		Settings: settings,
		Nav:      nav,
		Page:     about,
	})
}

// Contact renders the contact page, or its empty state when never authored.
func (h *Frontend) Contact(w http.ResponseWriter, r *http.Request) {
	settings, nav := h.chrome(r)

	contact, err := h.svc.ContactPage(r.Context())
	if err != nil {
		h.serverError(w, "failed to load contact page", err)
		return
	}

	var pageSEO *content.SEO
	title := "Contact"
	if contact != nil {
		pageSEO = contact.SEO
		if contact.Heading != "" {
			title = contact.Heading
		}
	}
	h.renderer.HTML(w, http.StatusOK, "contact", PageData{
		Meta:     seo.Resolve(pageSEO, settings, title, h.baseURL+"/contact"),
		Settings: settings,
		Nav:      nav,
		Page:     contact,
	})
}

// SearchPage is the search results view model.
type SearchPage struct {
	Term    string
	Results content.SearchResults
}

// Search renders the fan-out text match across posts and projects.
func (h *Frontend) Search(w http.ResponseWriter, r *http.Request) {
	settings, nav := h.chrome(r)
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	var results content.SearchResults
	if term != "" {
		var err error
		results, err = h.svc.Search(r.Context(), term)
		if err != nil {
			h.serverError(w, "search failed", err)
			return
		}
	}

	h.renderer.HTML(w, http.StatusOK, "search", PageData{
		Meta:     seo.Resolve(nil, settings, "Search", h.baseURL+"/search"),
		Settings: settings,
		Nav:      nav,
		Page:     SearchPage{Term: term, Results: results},
	})
}

// Sitemap serves sitemap.xml built from every sluggable document.
func (h *Frontend) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.SitemapEntries(r.Context())
	if err != nil {
		h.serverError(w, "failed to load sitemap entries", err)
		return
	}

	out, err := seo.BuildSitemap(h.baseURL, entries)
	if err != nil {
		h.serverError(w, "failed to build sitemap", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// notFound renders the 404 page with full chrome.
func (h *Frontend) notFound(w http.ResponseWriter, _ *http.Request, settings *content.SiteSettings, nav *content.Navigation) {
	h.renderer.HTML(w, http.StatusNotFound, "not_found", PageData{
		Meta:     seo.Resolve(nil, settings, "Not Found", ""),
		Settings: settings,
		Nav:      nav,
	})
}

// serverError logs an upstream failure and responds 500. Upstream errors
// propagate here unmodified; no retry or fallback content is attempted.
func (h *Frontend) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
