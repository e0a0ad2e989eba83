// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration values.  Every field is read once at
// startup and never mutated afterwards.  SupabaseURL and GeminiAPIKey are only
// inspected for presence; nothing connects to either service.
type Config struct {
	Env             string        `mapstructure:"env"`              // application environment (e.g. "development", "production")
	Host            string        `mapstructure:"host"`             // interface to bind, all interfaces by default
	Port            int           `mapstructure:"port"`             // HTTP port to listen on
	SupabaseURL     string        `mapstructure:"supabase_url"`     // presence reported by /api/test
	GeminiAPIKey    string        `mapstructure:"gemini_api_key"`   // presence reported by /api/test
	BodyLimit       string        `mapstructure:"body_limit"`       // max request body, echo size notation (100K, 2M)
	CORSOrigins     string        `mapstructure:"cors_origins"`     // comma separated list of allowed origins
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // grace period for in-flight requests
	LogLevel        string        `mapstructure:"log_level"`        // debug, info, warn or error
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`  // expose /metrics

	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// Addr is the host:port pair handed to the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SupabaseConfigured reports whether SUPABASE_URL was non-empty at startup.
func (c Config) SupabaseConfigured() bool { return c.SupabaseURL != "" }

// GeminiConfigured reports whether GEMINI_API_KEY was non-empty at startup.
func (c Config) GeminiConfigured() bool { return c.GeminiAPIKey != "" }

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, p := range strings.Split(c.CORSOrigins, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Load reads configuration from the process environment, applying defaults
// for anything unset.  A .env file should already have been merged into the
// environment by the caller.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Cache.Methods = parseMethods(cfg.Cache.MethodList)
	cfg.RateLimit = cfg.RateLimit.normalize()

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 3001)
	v.SetDefault("supabase_url", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("body_limit", "100K")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_enabled", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.burst", 0)
	v.SetDefault("rate_limit.refill_tokens", 1)
	v.SetDefault("rate_limit.refill_every", "0s")
	v.SetDefault("rate_limit.refill_interval", "1s")
	v.SetDefault("rate_limit.ttl", "10m")
	v.SetDefault("rate_limit.key_strategy", "ip_route")
	v.SetDefault("rate_limit.prefix", "rl")
	v.SetDefault("rate_limit.debug", false)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.methods", "GET")
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("cache.key_strategy", "route_query")
	v.SetDefault("cache.prefix", "cache")
	v.SetDefault("cache.max_body_bytes", 1048576)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"env":              "APP_ENV",
		"host":             "HOST",
		"port":             "PORT",
		"supabase_url":     "SUPABASE_URL",
		"gemini_api_key":   "GEMINI_API_KEY",
		"body_limit":       "BODY_LIMIT",
		"cors_origins":     "CORS_ALLOW_ORIGINS",
		"shutdown_timeout": "SHUTDOWN_TIMEOUT",
		"log_level":        "LOG_LEVEL",
		"metrics_enabled":  "METRICS_ENABLED",

		"redis.addr":     "REDIS_ADDR",
		"redis.host":     "REDIS_HOST",
		"redis.port":     "REDIS_PORT",
		"redis.password": "REDIS_PASSWORD",
		"redis.db":       "REDIS_DB",
		"redis.tls":      "REDIS_TLS",

		"rate_limit.enabled":         "RATE_LIMIT_ENABLED",
		"rate_limit.capacity":        "RATE_LIMIT_CAPACITY",
		"rate_limit.burst":           "RATE_LIMIT_BURST",
		"rate_limit.refill_tokens":   "RATE_LIMIT_REFILL_TOKENS",
		"rate_limit.refill_interval": "RATE_LIMIT_REFILL_INTERVAL",
		"rate_limit.refill_every":    "RATE_LIMIT_REFILL_EVERY",
		"rate_limit.ttl":             "RATE_LIMIT_TTL",
		"rate_limit.key_strategy":    "RATE_LIMIT_KEY_STRATEGY",
		"rate_limit.prefix":          "RATE_LIMIT_PREFIX",
		"rate_limit.debug":           "RATE_LIMIT_DEBUG",

		"cache.enabled":        "CACHE_ENABLED",
		"cache.methods":        "CACHE_METHODS",
		"cache.ttl":            "CACHE_TTL",
		"cache.key_strategy":   "CACHE_KEY_STRATEGY",
		"cache.prefix":         "CACHE_PREFIX",
		"cache.max_body_bytes": "CACHE_MAX_BODY_BYTES",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.BodyLimit) == "" {
		return errors.New("body limit is required")
	}
	if _, err := bytes.Parse(cfg.BodyLimit); err != nil {
		return fmt.Errorf("invalid body limit %q: %w", cfg.BodyLimit, err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}
