// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DefaultFreshness is the freshness window applied when a fetch specifies
// neither a TTL nor NoExpiry.
const DefaultFreshness = 60 * time.Second

// Querier executes a GROQ query and returns the raw result payload.
// *cms.Client satisfies this.
type Querier interface {
	Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
}

// FetchOptions control caching of a single content fetch.
type FetchOptions struct {
	// TTL is the freshness window. Zero means DefaultFreshness.
	TTL time.Duration

	// NoExpiry stores the result until explicitly invalidated by tag.
	NoExpiry bool

	// Tags are the invalidation labels attached to the cached entry.
	Tags []string
}

// Fetch executes a query through the client, caching the raw result under a
// key derived from (query, params) and tagging it for invalidation.
// Identical (query, params) pairs within the freshness window are served
// from cache without re-querying. Client errors propagate unmodified; a
// failed fetch caches nothing. A null result is a legitimate cacheable
// state and decodes to a nil *T.
func Fetch[T any](ctx context.Context, store Store, client Querier, query string, params map[string]any, opts FetchOptions) (*T, error) {
	key := FetchKey(query, params)

	if data, err := store.Get(ctx, key); err == nil {
		return decodeResult[T](data)
	}

	raw, err := client.Query(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}

	ttl := opts.TTL
	if opts.NoExpiry {
		ttl = -1
	} else if ttl == 0 {
		ttl = DefaultFreshness
	}

	// Cache write failures are not fetch failures; the result is still valid.
	if err := store.Set(ctx, key, raw, ttl); err == nil {
		_ = store.Tag(ctx, key, opts.Tags...)
	}

	return decodeResult[T](raw)
}

// FetchKey derives the deterministic cache key for a (query, params) pair.
// Params are serialized in sorted key order so equivalent maps hash equal.
func FetchKey(query string, params map[string]any) string {
	h := sha256.New()
	h.Write([]byte(query))
	h.Write([]byte{0})

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		v, err := json.Marshal(params[k])
		if err != nil {
			v = []byte(fmt.Sprintf("%v", params[k]))
		}
		h.Write(v)
		h.Write([]byte{0})
	}

	return "q:" + hex.EncodeToString(h.Sum(nil))
}

// decodeResult unmarshals a raw result, mapping JSON null to nil.
func decodeResult[T any](data []byte) (*T, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("cache: decoding cached result: %w", err)
	}
	return &value, nil
}
