package config

// Config holds runtime configuration for the server.
type Config struct {
	Port                  string
	RosterRefreshInterval Duration
	Provider              string
	CORSAllowedOrigins    []string
	NBAStats              NBAStatsConfig
	LLM                   LLMConfig
	Cache                 CacheConfig
	Metrics               MetricsConfig
	Snapshots             SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                  envOrDefault(envPort, defaultPort),
		RosterRefreshInterval: durationEnvOrDefault(envRosterRefresh, defaultRosterRefresh),
		Provider:              envOrDefault(envProvider, defaultProvider),
		CORSAllowedOrigins:    listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		NBAStats:              loadNBAStats(),
		LLM:                   loadLLM(),
		Cache:                 loadCache(),
		Metrics:               loadMetrics(),
		Snapshots:             loadSnapshots(),
	}
}
