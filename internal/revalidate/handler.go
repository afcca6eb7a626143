// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package revalidate implements the webhook endpoint that maps content
// change notifications to cache invalidation. The handler is idempotent:
// replaying a notification produces the same invalidation set.
package revalidate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// MaxBodyLen caps the webhook request body (1MB).
const MaxBodyLen = 1 << 20

// maxLimiters caps the per-client limiter map. RemoteAddr is
// client-influenced, so the map must not grow with attacker-chosen keys.
const maxLimiters = 1024

// limiterIdleTTL is how long an unused client limiter is kept.
const limiterIdleTTL = 10 * time.Minute

// documentTypeToTags maps a changed document type to the cache tags it
// invalidates. Types absent from the table fall back to the type name
// itself as a single tag.
var documentTypeToTags = map[string][]string{
	"homepage":     {"homepage"},
	"aboutPage":    {"aboutPage"},
	"contactPage":  {"contactPage"},
	"siteSettings": {"siteSettings"},
	"navigation":   {"navigation"},
	"blogPost":     {"blogPost"},
	"project":      {"project"},
	"popupContent": {"popupContent", "blogPost", "project"},
}

// documentTypeToPath maps detail-page types to their base path, so a
// changed slug invalidates `{basePath}/{slug}`.
var documentTypeToPath = map[string]string{
	"blogPost": "/blog",
	"project":  "/projects",
}

// singletonPaths maps singleton page types to their fixed path.
var singletonPaths = map[string]string{
	"homepage":    "/",
	"aboutPage":   "/about",
	"contactPage": "/contact",
}

// listingPaths maps collection types to the listing pages that must also
// refresh; both collections can surface on the homepage as featured.
var listingPaths = map[string][]string{
	"blogPost": {"/blog", "/"},
	"project":  {"/projects", "/"},
}

// layoutTypes affect the site-wide chrome, not a single page.
var layoutTypes = map[string]bool{
	"siteSettings": true,
	"navigation":   true,
}

// Invalidator busts cache entries by tag. cache.Store satisfies it.
type Invalidator interface {
	InvalidateTag(ctx context.Context, tag string) (int, error)
}

// pathTag mirrors cache.PathTag; declared here so the handler depends
// only on the narrow Invalidator interface.
func pathTag(path string) string { return "path:" + path }

// layoutTag mirrors cache.LayoutTag.
const layoutTag = "layout"

// Handler receives signed change notifications and invalidates exactly
// the affected cache entries.
type Handler struct {
	secret string
	store  Invalidator
	logger *slog.Logger

	// delay is a heuristic wait for upstream eventual consistency before
	// invalidating; it is a known race window, not a guarantee, and
	// invalidation correctness does not depend on it.
	delay time.Duration

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

// clientLimiter pairs a rate limiter with its last use, for eviction.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Options configure the handler.
type Options struct {
	Secret string
	Store  Invalidator
	Logger *slog.Logger
	Delay  time.Duration
}

// NewHandler creates a webhook handler. An empty secret is permitted at
// construction so a misconfigured deployment surfaces as 500s on request,
// matching the configuration-error taxonomy.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		secret:   opts.Secret,
		store:    opts.Store,
		logger:   logger,
		delay:    opts.Delay,
		limiters: make(map[string]*clientLimiter),
	}
}

// payload is the change notification body.
type payload struct {
	Type string `json:"_type"`
	ID   string `json:"_id"`
	Slug *struct {
		Current string `json:"current"`
	} `json:"slug"`
}

// result is the success response body.
type result struct {
	Revalidated bool     `json:"revalidated"`
	Now         int64    `json:"now"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Paths       []string `json:"paths"`
}

// limiterFor returns the per-client rate limiter, keyed by remote IP.
// The map is capped: idle limiters are evicted before a new one is added.
func (h *Handler) limiterFor(remoteAddr string) *rate.Limiter {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		ip = remoteAddr
	}
	now := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()
	if entry, ok := h.limiters[ip]; ok {
		entry.lastSeen = now
		return entry.limiter
	}
	if len(h.limiters) >= maxLimiters {
		h.evictLimiters(now)
	}
	entry := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Limit(5), 10),
		lastSeen: now,
	}
	h.limiters[ip] = entry
	return entry.limiter
}

// evictLimiters drops idle entries; when none are idle the least recently
// seen entry goes, so the map never exceeds maxLimiters. Caller holds mu.
func (h *Handler) evictLimiters(now time.Time) {
	oldestKey := ""
	var oldestSeen time.Time
	for ip, entry := range h.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(h.limiters, ip)
			continue
		}
		if oldestKey == "" || entry.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = ip, entry.lastSeen
		}
	}
	if len(h.limiters) >= maxLimiters && oldestKey != "" {
		delete(h.limiters, oldestKey)
	}
}

// HandleWebhook processes a POST change notification.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID)

	if !h.limiterFor(r.RemoteAddr).Allow() {
		logger.Warn("webhook rate limited", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusTooManyRequests, map[string]any{"message": "Too Many Requests"})
		return
	}

	if h.secret == "" {
		logger.Error("revalidation secret is not configured")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Missing revalidation secret"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyLen))
	if err != nil {
		logger.Error("failed to read webhook body", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	if !IsValidSignature(body, r.Header.Get(SignatureHeader), h.secret) {
		logger.Warn("invalid webhook signature", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid signature"})
		return
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		logger.Warn("malformed webhook payload", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Bad Request: invalid JSON"})
		return
	}
	if p.Type == "" {
		logger.Warn("webhook payload missing _type")
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Bad Request: missing _type"})
		return
	}

	slug := ""
	if p.Slug != nil {
		slug = p.Slug.Current
	}
	logger.Info("revalidate webhook received",
		"type", p.Type,
		"id", p.ID,
		"slug", slug,
		"timestamp", time.Now().Format(time.RFC3339))

	// Heuristic wait for upstream eventual consistency. Known race window.
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-r.Context().Done():
			return
		}
	}

	tags, paths := invalidationSet(p.Type, slug)
	if err := h.invalidate(r.Context(), tags, paths); err != nil {
		logger.Error("cache invalidation failed", "error", err, "type", p.Type)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	logger.Info("revalidated",
		"type", p.Type,
		"revalidatedTags", tags,
		"revalidatedPaths", paths)

	writeJSON(w, http.StatusOK, result{
		Revalidated: true,
		Now:         time.Now().UnixMilli(),
		Type:        p.Type,
		Tags:        tags,
		Paths:       paths,
	})
}

// HandleHealthCheck answers GET with a static health payload.
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "Revalidation endpoint is active",
		"now":     time.Now().UnixMilli(),
	})
}

// invalidationSet computes the tags and page paths affected by a change.
// The computation is a pure function of (type, slug), which is what makes
// replays idempotent.
func invalidationSet(docType, slug string) (tags []string, paths []string) {
	tags, ok := documentTypeToTags[docType]
	if !ok {
		// Graceful degradation: unknown types bust their own name.
		tags = []string{docType}
	}
	tags = append([]string(nil), tags...)
	paths = []string{}

	if base, ok := documentTypeToPath[docType]; ok && slug != "" {
		paths = append(paths, base+"/"+slug)
	}
	if page, ok := singletonPaths[docType]; ok {
		paths = append(paths, page)
	}
	if layoutTypes[docType] {
		paths = append(paths, "/ (layout)")
	}
	if listings, ok := listingPaths[docType]; ok {
		for _, p := range listings {
			if !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}
	return tags, paths
}

// invalidate busts every tag, then every path-scoped entry. Redundant
// busts are safe; invalidation only marks entries stale.
func (h *Handler) invalidate(ctx context.Context, tags, paths []string) error {
	for _, tag := range tags {
		if _, err := h.store.InvalidateTag(ctx, tag); err != nil {
			return err
		}
	}
	for _, p := range paths {
		if p == "/ (layout)" {
			if _, err := h.store.InvalidateTag(ctx, layoutTag); err != nil {
				return err
			}
			continue
		}
		if _, err := h.store.InvalidateTag(ctx, pathTag(p)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
