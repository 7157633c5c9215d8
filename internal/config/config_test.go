package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, DefaultReadTimeoutSeconds*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "master", cfg.Contentful.Environment)
	assert.Equal(t, DefaultRemoteTimeoutSeconds*time.Second, cfg.Contentful.Timeout)
	assert.False(t, cfg.Debug)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
debug: true
warm_up: true
server:
  address: ":9090"
contentful:
  space_id: space-1
  access_token: token-1
  environment: staging
cache:
  backend: redis
  ttl: 2m
  redis:
    url: redis://localhost:6379/0
analytics:
  window_size: 256
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.WarmUp)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "space-1", cfg.Contentful.SpaceID)
	assert.Equal(t, "staging", cfg.Contentful.Environment)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 256, cfg.Analytics.WindowSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE_ID", "env-space")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "env-token")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RESOLVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-space", cfg.Contentful.SpaceID)
	assert.Equal(t, "env-token", cfg.Contentful.AccessToken)
	assert.True(t, cfg.Debug)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis://cache:6379", cfg.Cache.Redis.URL)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown cache backend", "cache:\n  backend: memcached\n"},
		{"redis backend without url", "cache:\n  backend: redis\n"},
		{"negative window", "analytics:\n  window_size: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("RESOLVER_PORT", "not-a-port")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
