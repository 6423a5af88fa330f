package config

import "time"

const (
	envRedisURL       = "REDIS_URL"
	envCareerCacheTTL = "CAREER_CACHE_TTL"

	defaultCareerCacheTTL = 6 * Duration(time.Hour)
)

// CacheConfig controls the optional Redis cache for raw career records.
// An empty RedisURL disables caching.
type CacheConfig struct {
	RedisURL string
	TTL      Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		RedisURL: envOrDefault(envRedisURL, ""),
		TTL:      durationEnvOrDefault(envCareerCacheTTL, defaultCareerCacheTTL),
	}
}
