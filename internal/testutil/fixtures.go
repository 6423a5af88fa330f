package testutil

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// SamplePlayer returns an active player fixture with the provided id and names.
func SamplePlayer(id int, first, last string) players.Player {
	return players.Player{ID: id, FirstName: first, LastName: last, IsActive: true}
}

// SampleRoster returns a small roster with one inactive entry.
func SampleRoster() []players.Player {
	return []players.Player{
		SamplePlayer(201939, "Stephen", "Curry"),
		SamplePlayer(2544, "LeBron", "James"),
		{ID: 893, FirstName: "Michael", LastName: "Jordan", IsActive: false},
	}
}

// SampleSeason returns a single-team season record with round per-game figures:
// 20 PTS, 5 REB, 4 AST, 1 STL, 1 BLK and 30 MIN over 10 games.
func SampleSeason(season, team string) stats.RawSeasonRecord {
	return stats.RawSeasonRecord{
		SeasonID:         season,
		TeamAbbreviation: team,
		GP:               10,
		GS:               10,
		MIN:              300,
		FGM:              80,
		FGA:              160,
		FGPct:            0.5,
		FG3M:             20,
		FG3A:             50,
		FG3Pct:           0.4,
		FTM:              20,
		FTA:              25,
		FTPct:            0.8,
		REB:              50,
		AST:              40,
		STL:              10,
		BLK:              10,
		TOV:              15,
		PTS:              200,
	}
}

// SampleCareer returns one record per season, oldest first.
func SampleCareer(seasons ...string) []stats.RawSeasonRecord {
	out := make([]stats.RawSeasonRecord, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, SampleSeason(s, "GSW"))
	}
	return out
}
