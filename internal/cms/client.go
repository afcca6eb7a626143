// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cms provides a client for the hosted Content Lake query API.
// Queries are declarative GROQ strings; parameters are always sent as a
// separate name->value mapping and never interpolated into query text.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// RequestTimeout is the HTTP request timeout for query execution.
	RequestTimeout = 30 * time.Second

	// MaxErrorBodyLen caps how much of a non-2xx response body is read
	// (64KB). Success bodies are read in full; a valid result can be
	// arbitrarily large.
	MaxErrorBodyLen = 64 * 1024

	// UserAgent identifies this site to the content API.
	UserAgent = "jane-coolidge-portfolio/1.0"
)

// Config holds the Content Lake connection parameters.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string // Optional; required only for private datasets
	UseCDN     bool

	// BaseURL overrides the derived API URL. Used in tests.
	BaseURL string
}

// Client executes GROQ queries against the hosted content API.
// It performs no retries and no result caching; failures propagate
// unmodified to the caller.
type Client struct {
	httpClient *http.Client
	queryURL   string
	token      string
	logger     *slog.Logger
}

// QueryError is a non-2xx response from the content API.
type QueryError struct {
	StatusCode  int
	Description string
}

func (e *QueryError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("content api: HTTP %d: %s", e.StatusCode, e.Description)
	}
	return fmt.Sprintf("content api: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// New creates a content API client. The client is constructed once at
// startup and passed to collaborators explicitly; there is no package-level
// singleton.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	base := cfg.BaseURL
	if base == "" {
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("cms: project id is required")
		}
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}
	if cfg.APIVersion == "" {
		return nil, fmt.Errorf("cms: api version is required")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("cms: dataset is required")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		queryURL: fmt.Sprintf("%s/v%s/data/query/%s", base, cfg.APIVersion, cfg.Dataset),
		token:    cfg.Token,
		logger:   logger,
	}, nil
}

// queryRequest is the POST body for query execution. Sending the query via
// POST keeps parameters structurally separate from the query text.
type queryRequest struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// queryEnvelope is the content API response wrapper.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error"`
}

type apiError struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Query executes a GROQ query with the given parameters and returns the raw
// result payload. A query that matches nothing yields the JSON literal
// "null", which callers treat as a legitimate absent state, not an error.
func (c *Client) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(queryRequest{Query: query, Params: params})
	if err != nil {
		return nil, fmt.Errorf("cms: marshaling query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cms: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: query request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyLen))
		if err != nil {
			return nil, fmt.Errorf("cms: reading error response: %w", err)
		}
		qerr := &QueryError{StatusCode: resp.StatusCode}
		var envelope queryEnvelope
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Error != nil {
			qerr.Description = envelope.Error.Description
		}
		c.logger.Error("content query failed",
			"status_code", resp.StatusCode,
			"description", qerr.Description)
		return nil, qerr
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cms: reading response: %w", err)
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("cms: decoding response envelope: %w", err)
	}
	return envelope.Result, nil
}

// QueryInto executes a query and decodes the result into dst.
// A null result leaves dst untouched and returns (false, nil), letting
// callers distinguish "absent" from "present but zero".
func (c *Client) QueryInto(ctx context.Context, query string, params map[string]any, dst any) (bool, error) {
	raw, err := c.Query(ctx, query, params)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cms: decoding query result: %w", err)
	}
	return true, nil
}
