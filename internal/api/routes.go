// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tunegate/tunegate/internal/api/middleware"
)

// Handler builds the full router: middleware stack, versioned API routes
// and the operational endpoints.
func (s *Server) Handler() http.Handler {
	r := middleware.NewRouter(middleware.StackConfig{
		AllowedOrigins:   s.cfg.HTTP.CORSOrigins,
		RateLimitEnabled: s.cfg.HTTP.RateLimitEnabled,
		RateLimitRPM:     s.cfg.HTTP.RateLimitRPM,
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleCombinedSearch)
		r.Get("/search/songs", s.handleSearchSongs)
		r.Get("/search/videos", s.handleSearchVideos)
		r.Get("/songs/{id}", s.handleSong)
		r.Get("/albums/{id}", s.handleAlbum)
		r.Get("/playlists/{id}", s.handlePlaylist)
		r.Get("/videos/{id}", s.handleVideo)
		r.Get("/status", s.handleStatus)
	})

	r.Get("/healthz", s.health.ServeHealth)
	r.Get("/readyz", s.health.ServeReady)
	r.Get("/openapi.yaml", s.handleOpenAPISpec)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
