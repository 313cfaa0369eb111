// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// applyEnv overlays TUNEGATE_* environment variables onto cfg. Unset or
// malformed values leave the current value untouched.
func applyEnv(cfg *Config) {
	setString(&cfg.Listen, "TUNEGATE_LISTEN")
	setString(&cfg.LogLevel, "TUNEGATE_LOG_LEVEL")

	setString(&cfg.Saavn.BaseURL, "TUNEGATE_SAAVN_BASE_URL")
	setDuration(&cfg.Saavn.Timeout, "TUNEGATE_SAAVN_TIMEOUT")
	setFloat(&cfg.Saavn.RPS, "TUNEGATE_SAAVN_RPS")

	setString(&cfg.YouTube.BaseURL, "TUNEGATE_YOUTUBE_BASE_URL")
	setString(&cfg.YouTube.APIKey, "TUNEGATE_YOUTUBE_API_KEY")
	setDuration(&cfg.YouTube.Timeout, "TUNEGATE_YOUTUBE_TIMEOUT")

	setString(&cfg.Media.Key, "TUNEGATE_MEDIA_KEY")
	setString(&cfg.Media.Placeholder, "TUNEGATE_MEDIA_PLACEHOLDER")

	setString(&cfg.Cache.Backend, "TUNEGATE_CACHE_BACKEND")
	setDuration(&cfg.Cache.TTL, "TUNEGATE_CACHE_TTL")
	setString(&cfg.Cache.RedisAddr, "TUNEGATE_REDIS_ADDR")
	setString(&cfg.Cache.RedisPassword, "TUNEGATE_REDIS_PASSWORD")
	setInt(&cfg.Cache.RedisDB, "TUNEGATE_REDIS_DB")

	setStringSlice(&cfg.HTTP.CORSOrigins, "TUNEGATE_CORS_ORIGINS")
	setBool(&cfg.HTTP.RateLimitEnabled, "TUNEGATE_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimitRPM, "TUNEGATE_RATE_LIMIT_RPM")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setStringSlice(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*dst = out
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
