// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingInvalidator records every tag invalidated, in order.
type recordingInvalidator struct {
	tags []string
}

func (r *recordingInvalidator) InvalidateTag(_ context.Context, tag string) (int, error) {
	r.tags = append(r.tags, tag)
	return 1, nil
}

func newTestHandler(secret string) (*Handler, *recordingInvalidator) {
	store := &recordingInvalidator{}
	h := NewHandler(Options{Secret: secret, Store: store})
	return h, store
}

func postWebhook(t *testing.T, h *Handler, body, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", strings.NewReader(body))
	if header != "" {
		req.Header.Set(SignatureHeader, header)
	}
	w := httptest.NewRecorder()
	h.HandleWebhook(w, req)
	return w
}

func signedPost(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	header := SignatureFor([]byte(body), time.Now().UnixMilli(), testSecret)
	return postWebhook(t, h, body, header)
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) result {
	t.Helper()
	var res result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestWebhookBlogPostChange(t *testing.T) {
	h, store := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "blogPost", "_id": "post-1", "slug": {"current": "my-post"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.True(t, res.Revalidated)
	assert.Equal(t, "blogPost", res.Type)
	assert.Equal(t, []string{"blogPost"}, res.Tags)
	assert.Equal(t, []string{"/blog/my-post", "/blog", "/"}, res.Paths)
	assert.NotZero(t, res.Now)

	assert.Equal(t, []string{
		"blogPost",
		"path:/blog/my-post",
		"path:/blog",
		"path:/",
	}, store.tags)
}

func TestWebhookProjectChange(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "project", "slug": {"current": "ss25-campaign"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"project"}, res.Tags)
	assert.Equal(t, []string{"/projects/ss25-campaign", "/projects", "/"}, res.Paths)
}

func TestWebhookCollectionChangeWithoutSlug(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "blogPost"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"/blog", "/"}, res.Paths, "no detail path without a slug")
}

func TestWebhookSingletonChange(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "aboutPage"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"aboutPage"}, res.Tags)
	assert.Equal(t, []string{"/about"}, res.Paths)
}

func TestWebhookLayoutChange(t *testing.T) {
	h, store := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "siteSettings"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"siteSettings"}, res.Tags)
	assert.Equal(t, []string{"/ (layout)"}, res.Paths)
	assert.Contains(t, store.tags, "layout")
}

func TestWebhookPopupContentFansOut(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "popupContent", "_id": "popup-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"popupContent", "blogPost", "project"}, res.Tags,
		"popup changes can surface in any referencing document")
}

func TestWebhookUnknownTypeDegradesGracefully(t *testing.T) {
	h, store := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": "unknownType"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeResult(t, w)
	assert.Equal(t, []string{"unknownType"}, res.Tags)
	assert.Empty(t, res.Paths)
	assert.Equal(t, []string{"unknownType"}, store.tags)
}

func TestWebhookIdempotentReplay(t *testing.T) {
	h, _ := newTestHandler(testSecret)
	body := `{"_type": "blogPost", "slug": {"current": "my-post"}}`

	first := decodeResult(t, signedPost(t, h, body))
	second := decodeResult(t, signedPost(t, h, body))

	assert.Equal(t, first.Tags, second.Tags)
	assert.Equal(t, first.Paths, second.Paths)
}

func TestWebhookInvalidSignature(t *testing.T) {
	h, store := newTestHandler(testSecret)
	body := `{"_type": "blogPost"}`

	w := postWebhook(t, h, body, "t=1700000000000,v1=bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.tags, "nothing may be invalidated on auth failure")
}

func TestWebhookMissingSignature(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := postWebhook(t, h, `{"_type": "blogPost"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookSignatureOverDifferentBody(t *testing.T) {
	h, _ := newTestHandler(testSecret)
	header := SignatureFor([]byte(`{"_type": "blogPost"}`), time.Now().UnixMilli(), testSecret)

	w := postWebhook(t, h, `{"_type": "project"}`, header)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_type": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookMissingType(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	w := signedPost(t, h, `{"_id": "doc-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookMissingSecretConfiguration(t *testing.T) {
	h, store := newTestHandler("")

	w := signedPost(t, h, `{"_type": "blogPost"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Missing revalidation secret")
	assert.Empty(t, store.tags)
}

func TestWebhookHealthCheck(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/revalidate", nil)
	w := httptest.NewRecorder()
	h.HandleHealthCheck(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Revalidation endpoint is active", body["message"])
	assert.NotZero(t, body["now"])
}

func TestLimiterMapBounded(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	// Far more distinct client addresses than the cap allows.
	for i := 0; i < maxLimiters+500; i++ {
		h.limiterFor(fmt.Sprintf("10.%d.%d.%d:1234", i/65536, (i/256)%256, i%256))
	}

	h.mu.Lock()
	size := len(h.limiters)
	h.mu.Unlock()
	assert.LessOrEqual(t, size, maxLimiters)
}

func TestLimiterReusedPerClient(t *testing.T) {
	h, _ := newTestHandler(testSecret)

	first := h.limiterFor("192.0.2.1:1000")
	second := h.limiterFor("192.0.2.1:2000")
	assert.Same(t, first, second, "same IP shares one limiter regardless of port")

	other := h.limiterFor("192.0.2.2:1000")
	assert.NotSame(t, first, other)
}

func TestInvalidationSetTable(t *testing.T) {
	tests := []struct {
		name      string
		docType   string
		slug      string
		wantTags  []string
		wantPaths []string
	}{
		{"blog post with slug", "blogPost", "my-post",
			[]string{"blogPost"}, []string{"/blog/my-post", "/blog", "/"}},
		{"project with slug", "project", "ss25",
			[]string{"project"}, []string{"/projects/ss25", "/projects", "/"}},
		{"homepage", "homepage", "",
			[]string{"homepage"}, []string{"/"}},
		{"contact page", "contactPage", "",
			[]string{"contactPage"}, []string{"/contact"}},
		{"navigation", "navigation", "",
			[]string{"navigation"}, []string{"/ (layout)"}},
		{"unknown", "mystery", "",
			[]string{"mystery"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, paths := invalidationSet(tt.docType, tt.slug)
			assert.Equal(t, tt.wantTags, tags)
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}
