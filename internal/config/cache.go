package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware.
// When Enabled is false or no Redis client is configured, caching is disabled.
// MethodList is the raw comma separated CACHE_METHODS value; Methods is the
// upper-cased set derived from it.  KeyStrategy determines which parts of the
// request contribute to the cache key.
type CacheConfig struct {
	Enabled      bool            `mapstructure:"enabled"`
	MethodList   string          `mapstructure:"methods"`
	Methods      map[string]bool `mapstructure:"-"`
	TTL          time.Duration   `mapstructure:"ttl"`
	KeyStrategy  string          `mapstructure:"key_strategy"`
	Prefix       string          `mapstructure:"prefix"`
	MaxBodyBytes int             `mapstructure:"max_body_bytes"`
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
