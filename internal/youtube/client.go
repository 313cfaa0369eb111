// SPDX-License-Identifier: MIT

// Package youtube implements a client for the video platform Data API.
// Unlike the catalog upstream, this API is keyed: a missing key puts the
// client into a degraded mode where every call fails with ErrDisabled and
// the daemon keeps serving the catalog surface.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Options configures a Client.
type Options struct {
	// APIKey authenticates requests. Empty means degraded mode.
	APIKey  string
	Timeout time.Duration
}

// Client talks to the video platform API. It is safe for concurrent use.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

// New creates a video platform client for the given base URL.
func New(base string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		apiKey: opts.APIKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client holds an API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Video fetches one video with snippet, duration and statistics.
func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	params := url.Values{
		"part": {"snippet,contentDetails,statistics"},
		"id":   {id},
	}
	var out videoListResponse
	if err := c.get(ctx, "videos", params, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, &APIError{Sentinel: ErrNotFound, Operation: "videos"}
	}
	return &out.Items[0], nil
}

// Search runs a video search and returns lightweight result items.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchItem, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	params := url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"video"},
		"maxResults": {strconv.Itoa(limit)},
	}
	var out searchListResponse
	if err := c.get(ctx, "search", params, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) get(ctx context.Context, op string, params url.Values, v any) error {
	if !c.Enabled() {
		return &APIError{Sentinel: ErrDisabled, Operation: op}
	}

	params.Set("key", c.apiKey)
	u := c.base + "/" + op + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err}
	}

	start := time.Now()
	res, err := c.http.Do(req)
	observeRequest(op, time.Since(start), err == nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return &APIError{Sentinel: ErrTimeout, Operation: op, Err: err}
		}
		return &APIError{Sentinel: ErrUpstreamUnavailable, Operation: op, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err}
	}

	switch {
	case res.StatusCode == http.StatusForbidden, res.StatusCode == http.StatusUnauthorized:
		// Bad or exhausted key. Treated like disabled so the caller can
		// degrade instead of retrying.
		return &APIError{Sentinel: ErrDisabled, Operation: op, Status: res.StatusCode}
	case res.StatusCode == http.StatusNotFound:
		return &APIError{Sentinel: ErrNotFound, Operation: op, Status: res.StatusCode}
	case res.StatusCode >= 500:
		return &APIError{Sentinel: ErrUpstreamError, Operation: op, Status: res.StatusCode}
	case res.StatusCode != http.StatusOK:
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Status: res.StatusCode}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err}
	}
	return nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
