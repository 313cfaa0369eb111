// SPDX-License-Identifier: MIT

// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"github.com/go-chi/chi/v5"

	tglog "github.com/tunegate/tunegate/internal/log"
)

// StackConfig configures the canonical HTTP ingress middleware stack.
type StackConfig struct {
	// CORS
	AllowedOrigins []string

	// Rate limiting
	RateLimitEnabled bool
	RateLimitRPM     int
}

// NewRouter constructs a chi router with the canonical middleware stack
// applied, in a fixed order so cross-cutting concerns cannot drift.
func NewRouter(cfg StackConfig) *chi.Mux {
	r := chi.NewRouter()

	// 1. Recoverer (outermost safety net)
	r.Use(Recoverer)
	// 2. RequestID (correlation early)
	r.Use(RequestID)
	// 3. CORS (so OPTIONS and browser clients behave)
	r.Use(CORS(cfg.AllowedOrigins))
	// 4. Security headers
	r.Use(SecurityHeaders())
	// 5. Metrics (track all requests)
	r.Use(Metrics())
	// 6. Logging (wraps handlers, captures full latency)
	r.Use(tglog.Middleware())
	// 7. Rate limit (global protection)
	if cfg.RateLimitEnabled {
		r.Use(APIRateLimit(cfg.RateLimitRPM))
	}

	return r
}
