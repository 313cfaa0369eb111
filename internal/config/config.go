// SPDX-License-Identifier: MIT

// Package config loads daemon configuration with precedence
// ENV > file > defaults.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config is the complete daemon configuration. It is assembled once at
// boot and passed explicitly to constructors; nothing reads it through
// package globals.
type Config struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
	Version  string `yaml:"-"`

	Saavn   SaavnConfig   `yaml:"saavn"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Media   MediaConfig   `yaml:"media"`
	Cache   CacheConfig   `yaml:"cache"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// SaavnConfig configures the music catalog upstream.
type SaavnConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	RPS     float64       `yaml:"rps"`
}

// YouTubeConfig configures the video platform upstream. An empty APIKey
// is legal and puts the video surface into degraded mode.
type YouTubeConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// MediaConfig carries the link derivation protocol constants. They are
// fixed by the upstream's reverse-engineered scheme; configurable so a
// scheme change does not require touching call sites.
type MediaConfig struct {
	Key         string `yaml:"key"`
	Placeholder string `yaml:"placeholder"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Backend       string        `yaml:"backend"` // memory|redis|none
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// HTTPConfig configures the serving surface.
type HTTPConfig struct {
	CORSOrigins      []string `yaml:"cors_origins"`
	RateLimitEnabled bool     `yaml:"rate_limit_enabled"`
	RateLimitRPM     int      `yaml:"rate_limit_rpm"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Saavn: SaavnConfig{
			BaseURL: "https://www.jiosaavn.com",
			Timeout: 15 * time.Second,
		},
		YouTube: YouTubeConfig{
			BaseURL: "https://www.googleapis.com/youtube/v3",
			Timeout: 15 * time.Second,
		},
		Media: MediaConfig{
			Key:         "38346591",
			Placeholder: "_96",
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     5 * time.Minute,
		},
		HTTP: HTTPConfig{
			RateLimitEnabled: true,
			RateLimitRPM:     600,
		},
	}
}

// Validate rejects configurations the daemon cannot serve with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("config: listen address must not be empty")
	}
	if err := validBaseURL("saavn.base_url", c.Saavn.BaseURL); err != nil {
		return err
	}
	if err := validBaseURL("youtube.base_url", c.YouTube.BaseURL); err != nil {
		return err
	}
	if c.Saavn.Timeout <= 0 || c.YouTube.Timeout <= 0 {
		return fmt.Errorf("config: upstream timeouts must be positive")
	}
	if c.Media.Key == "" || c.Media.Placeholder == "" {
		return fmt.Errorf("config: media key and placeholder must not be empty")
	}

	switch c.Cache.Backend {
	case "memory", "none":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("config: cache.redis_addr required for redis backend")
		}
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend != "none" && c.Cache.TTL <= 0 {
		return fmt.Errorf("config: cache.ttl must be positive")
	}
	if c.HTTP.RateLimitEnabled && c.HTTP.RateLimitRPM <= 0 {
		return fmt.Errorf("config: http.rate_limit_rpm must be positive when rate limiting is enabled")
	}
	return nil
}

func validBaseURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: %s %q is not an absolute URL", field, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: %s must use http or https", field)
	}
	return nil
}
