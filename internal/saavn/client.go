// SPDX-License-Identifier: MIT

// Package saavn implements a client for the upstream music catalog API.
// The upstream surface is a single api.php endpoint dispatched on a
// __call parameter; it is loosely documented and occasionally ships
// malformed payloads, so every response is shape-checked before use.
package saavn

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

	"golang.org/x/time/rate"
)

const (
	callSearchSongs = "search.getResults"
	callSongDetails = "song.getDetails"
	callAlbum       = "content.getAlbumDetails"
	callPlaylist    = "playlist.getDetails"
)

// Options configures a Client.
type Options struct {
	Timeout time.Duration
	// RPS caps outgoing requests per second. Zero disables the limiter;
	// the upstream has no published quota but throttles aggressive
	// callers, so production configs should set it.
	RPS float64
}

// Client talks to the catalog API. It is safe for concurrent use.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a catalog client for the given base URL.
func New(base string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	var limiter *rate.Limiter
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// SearchSongs runs a paginated song search.
func (c *Client) SearchSongs(ctx context.Context, query string, page, limit int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	params := url.Values{
		"q": {query},
		"p": {strconv.Itoa(page)},
		"n": {strconv.Itoa(limit)},
	}
	var out SearchResult
	if err := c.call(ctx, callSearchSongs, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Song fetches one song by catalog ID.
func (c *Client) Song(ctx context.Context, id string) (*Song, error) {
	params := url.Values{"pids": {id}}
	var out struct {
		Songs []Song `json:"songs"`
	}
	if err := c.call(ctx, callSongDetails, params, &out); err != nil {
		return nil, err
	}
	if len(out.Songs) == 0 {
		return nil, &APIError{Sentinel: ErrNotFound, Operation: callSongDetails}
	}
	song := out.Songs[0]
	if err := song.validate(); err != nil {
		return nil, err
	}
	return &song, nil
}

// Album fetches an album with its track list.
func (c *Client) Album(ctx context.Context, id string) (*Album, error) {
	params := url.Values{"albumid": {id}}
	var out Album
	if err := c.call(ctx, callAlbum, params, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: callAlbum, Err: errors.New("album payload missing id")}
	}
	return &out, nil
}

// Playlist fetches a playlist with its track list.
func (c *Client) Playlist(ctx context.Context, id string) (*Playlist, error) {
	params := url.Values{"listid": {id}}
	var out Playlist
	if err := c.call(ctx, callPlaylist, params, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: callPlaylist, Err: errors.New("playlist payload missing id")}
	}
	return &out, nil
}

// call performs one api.php request and decodes the payload into v.
func (c *Client) call(ctx context.Context, op string, params url.Values, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &APIError{Sentinel: ErrTimeout, Operation: op, Err: err}
		}
	}

	q := url.Values{
		"__call":      {op},
		"_format":     {"json"},
		"_marker":     {"0"},
		"api_version": {"4"},
		"ctx":         {"web6dot0"},
	}
	for k, vs := range params {
		q[k] = vs
	}

	u := c.base + "/api.php?" + q.Encode()
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
	case res.StatusCode == http.StatusNotFound:
		return &APIError{Sentinel: ErrNotFound, Operation: op, Status: res.StatusCode}
	case res.StatusCode >= 500:
		return &APIError{Sentinel: ErrUpstreamError, Operation: op, Status: res.StatusCode, Body: snippet(body)}
	case res.StatusCode != http.StatusOK:
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Status: res.StatusCode, Body: snippet(body)}
	}

	// The upstream reports "not found" as a 200 with an error field.
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err, Body: snippet(body)}
	}
	if probe.Error != "" {
		return &APIError{Sentinel: ErrNotFound, Operation: op, Body: probe.Error}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err, Body: snippet(body)}
	}
	return nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// snippet truncates a response body for error context.
func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
