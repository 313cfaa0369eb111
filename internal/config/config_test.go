package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "_96", cfg.Media.Placeholder)
}

func TestLoadPrecedenceEnvOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9000"
saavn:
  base_url: "https://file.example"
  timeout: 20s
cache:
  backend: none
`), 0o600))

	t.Setenv("TUNEGATE_SAAVN_BASE_URL", "https://env.example")
	t.Setenv("TUNEGATE_SAAVN_TIMEOUT", "30s")

	cfg, err := NewLoader(path, "test").Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Listen, "file layer applies")
	assert.Equal(t, "https://env.example", cfg.Saavn.BaseURL, "env beats file")
	assert.Equal(t, 30*time.Second, cfg.Saavn.Timeout)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "test", cfg.Version)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults().Saavn.BaseURL, cfg.Saavn.BaseURL)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := NewLoader("/does/not/exist.yaml", "test").Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("no_such_field: true\n"), 0o600))

	_, err := NewLoader(path, "test").Load()
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen", func(c *Config) { c.Listen = " " }},
		{"relative saavn url", func(c *Config) { c.Saavn.BaseURL = "/api" }},
		{"ftp scheme", func(c *Config) { c.YouTube.BaseURL = "ftp://x.example" }},
		{"zero timeout", func(c *Config) { c.Saavn.Timeout = 0 }},
		{"empty media key", func(c *Config) { c.Media.Key = "" }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis" }},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"rate limit without rpm", func(c *Config) { c.HTTP.RateLimitRPM = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvParsersIgnoreMalformed(t *testing.T) {
	t.Setenv("TUNEGATE_RATE_LIMIT_RPM", "not-a-number")
	t.Setenv("TUNEGATE_CACHE_TTL", "soon")

	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults().HTTP.RateLimitRPM, cfg.HTTP.RateLimitRPM)
	assert.Equal(t, Defaults().Cache.TTL, cfg.Cache.TTL)
}

func TestEnvCORSOrigins(t *testing.T) {
	t.Setenv("TUNEGATE_CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}
