package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// GoodProvider returns the provided roster and careers with no error.
type GoodProvider struct {
	Roster  []players.Player
	Careers map[int][]stats.RawSeasonRecord
}

func (p GoodProvider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.Roster, nil
}

func (p GoodProvider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	_ = ctx
	return p.Careers[playerID], nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	return nil, providers.ErrProviderUnavailable
}

// StubCompleter answers every prompt with Answer or Err and keeps the last payload.
type StubCompleter struct {
	Answer string
	Err    error
	Calls  atomic.Int32
	Last   prompt.Payload
}

func (c *StubCompleter) Complete(ctx context.Context, payload prompt.Payload) (string, error) {
	_ = ctx
	c.Calls.Add(1)
	c.Last = payload
	if c.Err != nil {
		return "", c.Err
	}
	return c.Answer, nil
}
