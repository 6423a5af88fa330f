package fixture

import (
	"context"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// Provider returns a static roster and career totals useful for local testing and bootstrapping.
type Provider struct {
	roster  []players.Player
	careers map[int][]stats.RawSeasonRecord
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		roster:  fixtureRoster(),
		careers: fixtureCareers(),
	}
}

// FetchRoster returns a deterministic set of players.
func (p *Provider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(p.roster))
	copy(out, p.roster)
	return out, nil
}

// FetchCareer returns the fixture career for playerID, or no records for unknown players.
func (p *Provider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	_ = ctx
	records := p.careers[playerID]
	out := make([]stats.RawSeasonRecord, len(records))
	copy(out, records)
	return out, nil
}
