package config

import "time"

const (
	envNBAStatsBaseURL      = "NBA_STATS_BASE_URL"
	envNBAStatsTimeout      = "NBA_STATS_TIMEOUT"
	envNBAStatsRPM          = "NBA_STATS_REQUESTS_PER_MINUTE"
	envNBAStatsRosterSeason = "NBA_STATS_ROSTER_SEASON"

	defaultNBAStatsBaseURL = "https://stats.nba.com"
	defaultNBAStatsTimeout = 30 * Duration(time.Second)
	// stats.nba.com blocks clients that burst; keep well under a request per second.
	defaultNBAStatsRPM          = 30
	defaultNBAStatsRosterSeason = "2023-24"
)

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL           string
	Timeout           Duration
	RequestsPerMinute int
	RosterSeason      string
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:           envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		Timeout:           durationEnvOrDefault(envNBAStatsTimeout, defaultNBAStatsTimeout),
		RequestsPerMinute: intEnvOrDefault(envNBAStatsRPM, defaultNBAStatsRPM),
		RosterSeason:      envOrDefault(envNBAStatsRosterSeason, defaultNBAStatsRosterSeason),
	}
}
