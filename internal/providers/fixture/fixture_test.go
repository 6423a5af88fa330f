package fixture

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

func TestFetchRosterIncludesCurry(t *testing.T) {
	p := New()
	roster, err := p.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	curry, err := players.Resolve("stephen", "CURRY", roster)
	if err != nil {
		t.Fatalf("expected curry in fixture roster, got %v", err)
	}
	if curry.ID != StephenCurryID || !curry.IsActive {
		t.Fatalf("unexpected player %+v", curry)
	}
}

func TestFetchRosterReturnsCopy(t *testing.T) {
	p := New()
	roster, _ := p.FetchRoster(context.Background())
	roster[0].FirstName = "mutated"

	again, _ := p.FetchRoster(context.Background())
	if again[0].FirstName == "mutated" {
		t.Fatal("expected fixture roster to be isolated from callers")
	}
}

func TestFetchCareerAggregatesDefaultSeason(t *testing.T) {
	p := New()
	records, err := p.FetchCareer(context.Background(), StephenCurryID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	seasons := stats.ListSeasons(records)
	if stats.DefaultSeason(seasons) != "2023-24" {
		t.Fatalf("expected 2023-24 default, got %v", seasons)
	}
	got, err := stats.Aggregate(records, "2023-24")
	if err != nil {
		t.Fatalf("expected aggregate success, got %v", err)
	}
	if got.GP != 74 || got.PTS != 1956.0/74 {
		t.Fatalf("unexpected per-game stats %+v", got)
	}
}

func TestFetchCareerMultiTeamSeasonUsesTotals(t *testing.T) {
	records, _ := New().FetchCareer(context.Background(), JamesHardenID)
	got, err := stats.Aggregate(records, "2021-22")
	if err != nil {
		t.Fatalf("expected aggregate success, got %v", err)
	}
	if got.TeamAbbreviation != stats.TotalTeamAbbreviation || got.GP != 65 {
		t.Fatalf("expected combined row, got %+v", got)
	}
}

func TestFetchCareerZeroGameSeason(t *testing.T) {
	records, _ := New().FetchCareer(context.Background(), KlayThompsonID)
	got, err := stats.Aggregate(records, "2019-20")
	if err != nil {
		t.Fatalf("expected aggregate success, got %v", err)
	}
	if got.PTS != 0 || got.MIN != 0 {
		t.Fatalf("expected zero rates for zero games, got %+v", got)
	}
}

func TestFetchCareerUnknownPlayer(t *testing.T) {
	records, err := New().FetchCareer(context.Background(), 1)
	if err != nil || len(records) != 0 {
		t.Fatalf("expected empty career, got %v err %v", records, err)
	}
}
