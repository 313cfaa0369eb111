// SPDX-License-Identifier: MIT

// Package api implements the HTTP serving surface: routing, request
// validation, response envelopes and the response cache in front of the
// upstream clients.
package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tunegate/tunegate/internal/cache"
	"github.com/tunegate/tunegate/internal/config"
	"github.com/tunegate/tunegate/internal/health"
	"github.com/tunegate/tunegate/internal/mapper"
	"github.com/tunegate/tunegate/internal/saavn"
	"github.com/tunegate/tunegate/internal/youtube"
)

// Server wires handlers to the upstream clients and the response cache.
type Server struct {
	cfg     config.Config
	saavn   *saavn.Client
	youtube *youtube.Client
	mapper  *mapper.Mapper
	cache   cache.Cache
	health  *health.Manager
	log     zerolog.Logger

	cacheTTL time.Duration
}

// Deps carries everything a Server needs. All fields are required except
// Cache, which falls back to a no-op cache.
type Deps struct {
	Config  config.Config
	Saavn   *saavn.Client
	YouTube *youtube.Client
	Mapper  *mapper.Mapper
	Cache   cache.Cache
	Health  *health.Manager
	Logger  zerolog.Logger
}

// NewServer constructs a Server from its dependencies.
func NewServer(d Deps) *Server {
	c := d.Cache
	if c == nil {
		c = cache.NewNoOp()
	}
	return &Server{
		cfg:      d.Config,
		saavn:    d.Saavn,
		youtube:  d.YouTube,
		mapper:   d.Mapper,
		cache:    c,
		health:   d.Health,
		log:      d.Logger,
		cacheTTL: d.Config.Cache.TTL,
	}
}
