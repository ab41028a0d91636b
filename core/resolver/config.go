package resolver

import "time"

// Config holds configuration for calculations.
type Config struct {
	// MaxDepth bounds recursion. Zero uses DefaultMaxDepth.
	MaxDepth int `mapstructure:"max_depth" default:"64"`
	// ResultCacheSeconds is how long identical calculations are served from cache. Zero disables it.
	ResultCacheSeconds int `mapstructure:"result_cache_seconds" default:"60"`
}

// ResultCacheTTL returns ResultCacheSeconds as a duration.
func (c Config) ResultCacheTTL() time.Duration {
	return time.Duration(c.ResultCacheSeconds) * time.Second
}
