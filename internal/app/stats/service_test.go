package stats

import (
	"context"
	"errors"
	"testing"

	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
)

func careers() map[int][]domainstats.RawSeasonRecord {
	return map[int][]domainstats.RawSeasonRecord{
		201939: {
			{SeasonID: "2022-23", TeamAbbreviation: "GSW", GP: 56, PTS: 1648},
			{SeasonID: "2023-24", TeamAbbreviation: "GSW", GP: 74, PTS: 1956, FG3Pct: 0.408},
		},
		7: {
			{SeasonID: "2019-20", TeamAbbreviation: "MIN", GP: 10, PTS: 100},
			{SeasonID: "2020-21", TeamAbbreviation: "MIN", GP: 20, PTS: 300},
		},
	}
}

func TestSeasonsListsNewestFirstWithDefault(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Careers: careers()}, nil)

	list, err := svc.Seasons(context.Background(), 201939)
	if err != nil {
		t.Fatalf("expected seasons, got %v", err)
	}
	if len(list.Seasons) != 2 || list.Seasons[0] != "2023-24" || list.Default != "2023-24" {
		t.Fatalf("unexpected season list %+v", list)
	}

	older, _ := svc.Seasons(context.Background(), 7)
	if older.Default != "2020-21" {
		t.Fatalf("expected most recent season as default, got %+v", older)
	}
}

func TestSeasonsForUnknownPlayerIsEmpty(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Careers: careers()}, nil)
	list, err := svc.Seasons(context.Background(), 1)
	if err != nil || len(list.Seasons) != 0 || list.Default != "" {
		t.Fatalf("expected empty season list, got %+v err %v", list, err)
	}
}

func TestSeasonStatsExplicitSeason(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Careers: careers()}, nil)

	got, err := svc.SeasonStats(context.Background(), 201939, "2022-23")
	if err != nil {
		t.Fatalf("expected stats, got %v", err)
	}
	if got.SeasonID != "2022-23" || got.PTS != 1648.0/56 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestSeasonStatsEmptySeasonUsesDefault(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Careers: careers()}, nil)

	got, err := svc.SeasonStats(context.Background(), 201939, "")
	if err != nil {
		t.Fatalf("expected stats, got %v", err)
	}
	if got.SeasonID != "2023-24" || got.FG3Pct != 0.408 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestSeasonStatsUnknownSeason(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Careers: careers()}, nil)

	_, err := svc.SeasonStats(context.Background(), 201939, "1999-00")
	snf, ok := domainstats.AsSeasonNotFoundError(err)
	if !ok || snf.Season != "1999-00" {
		t.Fatalf("expected season not found, got %v", err)
	}
}

func TestProviderFailuresAreSourceErrors(t *testing.T) {
	rl := &providers.RateLimitError{Provider: "nbastats", StatusCode: 429}
	svc := NewService(&teststubs.StubProvider{Err: rl}, nil)

	_, err := svc.SeasonStats(context.Background(), 201939, "2023-24")
	if _, ok := domainstats.AsSourceError(err); !ok {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit cause to stay reachable, got %v", err)
	}

	_, err = svc.Seasons(context.Background(), 201939)
	if _, ok := domainstats.AsSourceError(err); !ok {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestNilProviderIsSourceError(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Seasons(context.Background(), 1)
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected unavailable cause, got %v", err)
	}
}
