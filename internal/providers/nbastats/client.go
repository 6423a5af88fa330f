package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	Timeout      time.Duration
	RosterSeason string
}

// Client fetches rosters and career totals from stats.nba.com.
type Client struct {
	baseURL      string
	httpClient   httpDoer
	rosterSeason string
	now          func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		rosterSeason: resolveSeason(cfg.RosterSeason),
		now:          time.Now,
	}
}

// FetchRoster retrieves every player the league has on record for the configured season.
func (c *Client) FetchRoster(ctx context.Context) ([]players.Player, error) {
	q := url.Values{}
	q.Set("LeagueID", leagueIDNBA)
	q.Set("Season", c.rosterSeason)
	q.Set("IsOnlyCurrentSeason", "0")

	payload, err := c.get(ctx, rosterPath, q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.find(rosterResultSet)
	if !ok {
		return nil, fmt.Errorf("%s: response missing result set %s", providerName, rosterResultSet)
	}
	return mapRoster(set)
}

// FetchCareer retrieves regular-season totals for every season the player appeared in.
func (c *Client) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("PerMode", "Totals")
	q.Set("LeagueID", leagueIDNBA)

	payload, err := c.get(ctx, careerPath, q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.find(careerResultSet)
	if !ok {
		return nil, &stats.SourceError{Reason: "response missing result set " + careerResultSet}
	}
	return stats.DecodeRecords(set.Headers, set.RowSet)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return statsResponse{}, err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, fmt.Errorf("%s: request %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return statsResponse{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    providerName + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statsResponse{}, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return statsResponse{}, &stats.SourceError{Reason: "decode " + path, Err: err}
	}
	return payload, nil
}
