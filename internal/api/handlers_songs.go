// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tunegate/tunegate/internal/cache"
	"github.com/tunegate/tunegate/internal/mapper"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 40
)

// searchSongsPayload is the data body of GET /api/v1/search/songs.
type searchSongsPayload struct {
	Total   int            `json:"total"`
	Start   int            `json:"start"`
	Results []mapper.Track `json:"results"`
}

func (s *Server) handleSearchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter is required")
		return
	}
	page := intParam(r, "page", 1)
	limit := clamp(intParam(r, "limit", defaultSearchLimit), 1, maxSearchLimit)

	key := cache.Key("search/songs", url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		res, err := s.saavn.SearchSongs(ctx, query, page, limit)
		if err != nil {
			return nil, err
		}
		tracks := make([]mapper.Track, 0, len(res.Results))
		for _, song := range res.Results {
			tracks = append(tracks, s.mapper.Track(song))
		}
		return searchSongsPayload{Total: res.Total, Start: res.Start, Results: tracks}, nil
	})
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := cache.Key("songs", url.Values{"id": {id}})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		song, err := s.saavn.Song(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.mapper.Track(*song), nil
	})
}

func (s *Server) handleAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := cache.Key("albums", url.Values{"id": {id}})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		album, err := s.saavn.Album(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.mapper.Album(*album), nil
	})
}

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := cache.Key("playlists", url.Values{"id": {id}})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		playlist, err := s.saavn.Playlist(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.mapper.Playlist(*playlist), nil
	})
}

func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
