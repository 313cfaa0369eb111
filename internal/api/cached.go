// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tunegate/tunegate/internal/log"
)

// serveCached serves a GET endpoint through the response cache. The cache
// stores the fully marshaled envelope so hits skip both the upstream call
// and re-encoding.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, key string, produce func(ctx context.Context) (any, error)) {
	ctx := r.Context()

	if body, ok := s.cache.Get(ctx, key); ok {
		w.Header().Set("X-Cache", "HIT")
		s.setCacheControl(w)
		writeRaw(w, http.StatusOK, body)
		return
	}

	data, err := produce(ctx)
	if err != nil {
		s.respondUpstreamError(w, r, key, err)
		return
	}

	body, err := marshalData(data)
	if err != nil {
		logger := log.WithComponentFromContext(ctx, "api")
		logger.Error().
			Str("event", "response.encode_failed").
			Str("route", key).
			Err(err).
			Msg("response encoding failed")
		writeError(w, r, http.StatusInternalServerError, "response encoding failed")
		return
	}

	s.cache.Set(ctx, key, body, s.cacheTTL)
	w.Header().Set("X-Cache", "MISS")
	s.setCacheControl(w)
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) setCacheControl(w http.ResponseWriter) {
	secs := int(s.cacheTTL.Seconds())
	if secs <= 0 {
		w.Header().Set("Cache-Control", "no-store")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(secs))
}
