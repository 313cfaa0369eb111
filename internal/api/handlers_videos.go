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

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := cache.Key("videos", url.Values{"id": {id}})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		video, err := s.youtube.Video(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.mapper.Video(*video), nil
	})
}

func (s *Server) handleSearchVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter is required")
		return
	}
	limit := clamp(intParam(r, "limit", defaultSearchLimit), 1, maxSearchLimit)

	key := cache.Key("search/videos", url.Values{
		"query": {query},
		"limit": {strconv.Itoa(limit)},
	})

	s.serveCached(w, r, key, func(ctx context.Context) (any, error) {
		items, err := s.youtube.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		records := make([]mapper.VideoSearchRecord, 0, len(items))
		for _, item := range items {
			records = append(records, s.mapper.VideoSearch(item))
		}
		return records, nil
	})
}
