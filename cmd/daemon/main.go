// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tunegate/tunegate/internal/api"
	"github.com/tunegate/tunegate/internal/cache"
	"github.com/tunegate/tunegate/internal/config"
	"github.com/tunegate/tunegate/internal/health"
	tglog "github.com/tunegate/tunegate/internal/log"
	"github.com/tunegate/tunegate/internal/mapper"
	"github.com/tunegate/tunegate/internal/media"
	"github.com/tunegate/tunegate/internal/saavn"
	"github.com/tunegate/tunegate/internal/version"
	"github.com/tunegate/tunegate/internal/youtube"
)

// maskURL removes user info from a URL string for safe logging.
func maskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url-redacted"
	}
	parsed.User = nil
	return parsed.String()
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	// Configure logger with safe defaults until config is loaded
	tglog.Configure(tglog.Config{
		Level:   "info",
		Service: "tunegate",
		Version: version.Version,
	})
	logger := tglog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := config.NewLoader(*configPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
	}

	// Apply the configured log level now that config is loaded
	tglog.SetLevel(cfg.LogLevel)

	logger.Info().
		Str("event", "startup").
		Str("version", version.Version).
		Str("commit", version.Commit).
		Str("build_date", version.Date).
		Str("addr", cfg.Listen).
		Msg("starting tunegate")

	logger.Info().Msgf("→ Catalog upstream: %s", maskURL(cfg.Saavn.BaseURL))
	if cfg.YouTube.APIKey != "" {
		logger.Info().Msgf("→ Video upstream: %s (key: configured)", maskURL(cfg.YouTube.BaseURL))
	} else {
		logger.Warn().Msg("→ Video upstream: disabled (no API key). Video endpoints return 503.")
	}
	logger.Info().Msgf("→ Cache: %s (ttl: %s)", cfg.Cache.Backend, cfg.Cache.TTL)

	deriver, err := media.NewDeriver(media.KeyConfig{
		Key:         cfg.Media.Key,
		Placeholder: cfg.Media.Placeholder,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "media.deriver_init_failed").
			Msg("failed to initialize link deriver")
	}

	saavnClient := saavn.New(cfg.Saavn.BaseURL, saavn.Options{
		Timeout: cfg.Saavn.Timeout,
		RPS:     cfg.Saavn.RPS,
	})
	youtubeClient := youtube.New(cfg.YouTube.BaseURL, youtube.Options{
		APIKey:  cfg.YouTube.APIKey,
		Timeout: cfg.YouTube.Timeout,
	})

	responseCache, cleanup, err := buildCache(cfg.Cache)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "cache.init_failed").
			Str("backend", cfg.Cache.Backend).
			Msg("failed to initialize response cache")
	}
	defer cleanup()

	hm := health.NewManager(cfg.Version)
	hm.RegisterChecker(health.NewUpstreamChecker("catalog", cfg.Saavn.BaseURL))
	if youtubeClient.Enabled() {
		hm.RegisterChecker(health.NewUpstreamChecker("video", cfg.YouTube.BaseURL))
	} else {
		hm.RegisterChecker(health.NewStaticChecker("video", health.CheckResult{
			Status:  health.StatusDegraded,
			Message: "video features disabled: no API key configured",
		}))
	}

	server := api.NewServer(api.Deps{
		Config:  cfg,
		Saavn:   saavnClient,
		YouTube: youtubeClient,
		Mapper:  mapper.New(deriver, tglog.WithComponent("mapper")),
		Cache:   responseCache,
		Health:  hm,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("event", "http.listen").
			Str("addr", cfg.Listen).
			Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().
			Str("event", "shutdown.signal").
			Msg("shutdown signal received")
	case err := <-errCh:
		logger.Error().
			Err(err).
			Str("event", "http.serve_failed").
			Msg("HTTP server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Str("event", "shutdown.forced").
			Msg("graceful shutdown failed, closing")
		_ = httpServer.Close()
	}

	logger.Info().Msg("server exiting")
}

// buildCache constructs the configured cache backend. The returned cleanup
// releases backend resources (janitor goroutine or redis connection).
func buildCache(cfg config.CacheConfig) (cache.Cache, func(), error) {
	switch cfg.Backend {
	case "memory":
		c := cache.NewMemory(time.Minute)
		return c, func() {
			if stopper, ok := c.(interface{ Stop() }); ok {
				stopper.Stop()
			}
		}, nil
	case "redis":
		c, err := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, tglog.WithComponent("cache"))
		if err != nil {
			return nil, nil, err
		}
		return c, func() {
			if closer, ok := c.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		}, nil
	case "none":
		return cache.NewNoOp(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
