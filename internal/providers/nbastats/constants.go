package nbastats

import "time"

const (
	defaultBaseURL     = "https://stats.nba.com"
	defaultHTTPTimeout = 30 * time.Second
	defaultSeason      = "2023-24"
	leagueIDNBA        = "00"

	rosterPath = "/stats/commonallplayers"
	careerPath = "/stats/playercareerstats"

	rosterResultSet = "CommonAllPlayers"
	careerResultSet = "SeasonTotalsRegularSeason"

	// Upper bound on error bodies copied into error messages.
	maxErrorBody = 512
)

// stats.nba.com drops requests that do not look like they came from the
// nba.com site, so every request carries these headers.
var browserHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Connection":         "keep-alive",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"User-Agent":         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}
