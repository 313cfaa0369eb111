// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tunegate/tunegate/internal/cache"
	"github.com/tunegate/tunegate/internal/log"
	"github.com/tunegate/tunegate/internal/mapper"
)

// combinedSearchPayload is the data body of GET /api/v1/search. A side
// whose upstream failed (or is disabled) renders as null; the other side
// is served regardless.
type combinedSearchPayload struct {
	Songs  *searchSongsPayload        `json:"songs"`
	Videos []mapper.VideoSearchRecord `json:"videos"`
}

func (s *Server) handleCombinedSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter is required")
		return
	}
	limit := clamp(intParam(r, "limit", defaultSearchLimit), 1, maxSearchLimit)

	key := cache.Key("search", url.Values{
		"query": {query},
		"limit": {strconv.Itoa(limit)},
	})

	ctx := r.Context()
	if body, ok := s.cache.Get(ctx, key); ok {
		w.Header().Set("X-Cache", "HIT")
		s.setCacheControl(w)
		writeRaw(w, http.StatusOK, body)
		return
	}

	payload := s.combinedSearch(ctx, query, limit)

	body, err := marshalData(payload)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "response encoding failed")
		return
	}

	// A degraded response is served but not cached, so the failed side
	// gets retried on the next request rather than pinned for the TTL.
	if payload.Songs != nil && payload.Videos != nil {
		s.cache.Set(ctx, key, body, s.cacheTTL)
	}
	w.Header().Set("X-Cache", "MISS")
	s.setCacheControl(w)
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) combinedSearch(ctx context.Context, query string, limit int) combinedSearchPayload {
	logger := log.WithComponentFromContext(ctx, "api")
	payload := combinedSearchPayload{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.saavn.SearchSongs(gctx, query, 1, limit)
		if err != nil {
			logger.Warn().
				Str("event", "search.songs_degraded").
				Err(err).
				Msg("song search failed, serving partial results")
			return nil
		}
		tracks := make([]mapper.Track, 0, len(res.Results))
		for _, song := range res.Results {
			tracks = append(tracks, s.mapper.Track(song))
		}
		payload.Songs = &searchSongsPayload{Total: res.Total, Start: res.Start, Results: tracks}
		return nil
	})
	g.Go(func() error {
		items, err := s.youtube.Search(gctx, query, limit)
		if err != nil {
			logger.Warn().
				Str("event", "search.videos_degraded").
				Err(err).
				Msg("video search failed, serving partial results")
			return nil
		}
		records := make([]mapper.VideoSearchRecord, 0, len(items))
		for _, item := range items {
			records = append(records, s.mapper.VideoSearch(item))
		}
		payload.Videos = records
		return nil
	})
	_ = g.Wait()

	return payload
}
