package config

import "time"

// RateLimitConfig configures the Redis token bucket in front of the API.
// Burst, when positive, overrides Capacity.  RefillEvery, when positive,
// switches to a one-token-per-interval refill.
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Capacity       int           `mapstructure:"capacity"`
	Burst          int           `mapstructure:"burst"`
	RefillTokens   int           `mapstructure:"refill_tokens"`
	RefillInterval time.Duration `mapstructure:"refill_interval"`
	RefillEvery    time.Duration `mapstructure:"refill_every"`
	TTL            time.Duration `mapstructure:"ttl"`
	KeyStrategy    string        `mapstructure:"key_strategy"`
	Prefix         string        `mapstructure:"prefix"`
	Debug          bool          `mapstructure:"debug"`
}

func (rl RateLimitConfig) normalize() RateLimitConfig {
	if rl.Burst > 0 {
		rl.Capacity = rl.Burst
	}
	if rl.RefillEvery > 0 {
		rl.RefillTokens = 1
		rl.RefillInterval = rl.RefillEvery
	}
	if rl.Capacity < 1 {
		rl.Capacity = 1
	}
	if rl.RefillTokens < 1 {
		rl.RefillTokens = 1
	}
	if rl.RefillInterval <= 0 {
		rl.RefillInterval = time.Second
	}
	// keys must outlive a few refill windows or buckets reset early
	minTTL := 5 * rl.RefillInterval
	if rl.TTL < minTTL {
		rl.TTL = minTTL
	}
	return rl
}
