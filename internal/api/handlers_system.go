// SPDX-License-Identifier: MIT

package api

import (
	_ "embed"
	"net/http"

	"github.com/tunegate/tunegate/internal/cache"
)

//go:embed openapi.yaml
var openAPISpec []byte

// statusPayload is the data body of GET /api/v1/status.
type statusPayload struct {
	Version      string      `json:"version"`
	VideoEnabled bool        `json:"videoEnabled"`
	Cache        cache.Stats `json:"cache"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, statusPayload{
		Version:      s.cfg.Version,
		VideoEnabled: s.youtube.Enabled(),
		Cache:        s.cache.Stats(),
	})
}

func (s *Server) handleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}
