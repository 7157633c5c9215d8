// Package config loads resolver configuration from a YAML file with
// environment variable overrides for credentials and deployment knobs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultReadTimeoutSeconds is the default read timeout in seconds
	DefaultReadTimeoutSeconds = 10
	// DefaultWriteTimeoutSeconds is the default write timeout in seconds
	DefaultWriteTimeoutSeconds = 30
	// DefaultShutdownTimeoutSeconds is the default shutdown timeout in seconds
	DefaultShutdownTimeoutSeconds = 30
	// DefaultRemoteTimeoutSeconds caps one delivery API round trip
	DefaultRemoteTimeoutSeconds = 10
)

// Cache backend names accepted in CacheConfig.Backend.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Debug      bool             `yaml:"debug"` // Controls log level and format
	Server     ServerConfig     `yaml:"server"`
	Contentful ContentfulConfig `yaml:"contentful"`
	Cache      CacheConfig      `yaml:"cache"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	WarmUp     bool             `yaml:"warm_up"` // Resolve every content type at startup
}

type ServerConfig struct {
	Address      string        `yaml:"address"` // e.g., ":8080"
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ContentfulConfig carries the delivery API credentials. Leaving SpaceID or
// AccessToken empty runs the resolver in static-only mode.
type ContentfulConfig struct {
	SpaceID       string        `yaml:"space_id"`
	Environment   string        `yaml:"environment"`
	AccessToken   string        `yaml:"access_token"`
	PreviewToken  string        `yaml:"preview_token"`
	BaseURL       string        `yaml:"base_url"` // Override for tests
	Timeout       time.Duration `yaml:"timeout"`
	WebhookSecret string        `yaml:"webhook_secret"` // Shared secret checked on webhook calls
}

type CacheConfig struct {
	Backend string        `yaml:"backend"` // "memory" or "redis"
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type AnalyticsConfig struct {
	WindowSize int `yaml:"window_size"` // Samples kept for the dashboard
}

// Validate checks if the server configuration is valid and sets defaults.
func (c *ServerConfig) Validate() error {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeoutSeconds * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeoutSeconds * time.Second
	}
	return nil
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q",
			CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.Redis.URL == "" {
		return fmt.Errorf("cache.redis.url is required when cache.backend is %q", CacheBackendRedis)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %v", c.Cache.TTL)
	}
	if c.Analytics.WindowSize < 0 {
		return fmt.Errorf("analytics.window_size must not be negative, got %d", c.Analytics.WindowSize)
	}
	return nil
}

// setDefaults sets default values for configuration fields
func setDefaults(cfg *Config) {
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheBackendMemory
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	if cfg.Contentful.Environment == "" {
		cfg.Contentful.Environment = "master"
	}
	if cfg.Contentful.Timeout == 0 {
		cfg.Contentful.Timeout = DefaultRemoteTimeoutSeconds * time.Second
	}
}

// overrideWithEnvVars overrides configuration with environment variables
func overrideWithEnvVars(cfg *Config) {
	if spaceID := os.Getenv("CONTENTFUL_SPACE_ID"); spaceID != "" {
		cfg.Contentful.SpaceID = spaceID
	}
	if token := os.Getenv("CONTENTFUL_ACCESS_TOKEN"); token != "" {
		cfg.Contentful.AccessToken = token
	}
	if preview := os.Getenv("CONTENTFUL_PREVIEW_TOKEN"); preview != "" {
		cfg.Contentful.PreviewToken = preview
	}
	if env := os.Getenv("CONTENTFUL_ENVIRONMENT"); env != "" {
		cfg.Contentful.Environment = env
	}
	if secret := os.Getenv("CONTENTFUL_WEBHOOK_SECRET"); secret != "" {
		cfg.Contentful.WebhookSecret = secret
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Cache.Redis.URL = redisURL
		cfg.Cache.Backend = CacheBackendRedis
	}
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	if appDebug := os.Getenv("APP_DEBUG"); appDebug != "" {
		cfg.Debug = parseBool(appDebug)
	}
}

// loadDotEnv loads .env.local then .env into the process environment.
// Missing files are fine; already-set variables win.
func loadDotEnv() error {
	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func Load(path string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	setDefaults(&cfg)
	overrideWithEnvVars(&cfg)

	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("server config validation: %w", err)
	}
	if port := os.Getenv("RESOLVER_PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return nil, fmt.Errorf("RESOLVER_PORT must be numeric, got %q", port)
		}
		cfg.Server.Address = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// parseBool parses a string value as a boolean.
// Returns true for "true", "1", "yes" (case-insensitive), false otherwise.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}
