package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func curry2324() RawSeasonRecord {
	return RawSeasonRecord{
		SeasonID:         "2023-24",
		TeamAbbreviation: "GSW",
		GP:               74,
		GS:               74,
		MIN:              2388,
		FGPct:            0.427,
		FG3Pct:           0.408,
		FTPct:            0.915,
		REB:              325,
		AST:              444,
		STL:              65,
		BLK:              13,
		PTS:              2029,
	}
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPerGameGuardsZeroGames(t *testing.T) {
	if got := PerGame(100, 0); got != 0 {
		t.Fatalf("expected 0 for zero games, got %v", got)
	}
	if got := PerGame(100, -3); got != 0 {
		t.Fatalf("expected 0 for negative games, got %v", got)
	}
	if got := PerGame(0, 0); got != 0 || math.IsNaN(got) {
		t.Fatalf("expected 0 (not NaN) for 0/0, got %v", got)
	}
	if got := PerGame(30, 4); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
}

func TestAggregateScenario(t *testing.T) {
	got, err := Aggregate([]RawSeasonRecord{curry2324()}, "2023-24")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"PTS", got.PTS, 27.42},
		{"REB", got.REB, 4.39},
		{"AST", got.AST, 6.0},
		{"STL", got.STL, 0.88},
		{"BLK", got.BLK, 0.18},
		{"MIN", got.MIN, 32.27},
	}
	for _, c := range checks {
		if !approx(c.got, c.want, 0.005) {
			t.Fatalf("%s expected ~%.2f, got %.4f", c.name, c.want, c.got)
		}
	}
	if got.GP != 74 || got.GS != 74 {
		t.Fatalf("expected GP/GS to remain counts, got %d/%d", got.GP, got.GS)
	}
	if got.SeasonID != "2023-24" || got.TeamAbbreviation != "GSW" {
		t.Fatalf("unexpected identifying fields %+v", got)
	}
}

func TestAggregatePerGameIsExactQuotient(t *testing.T) {
	for _, g := range []int{1, 3, 7, 74, 82} {
		for _, p := range []float64{0, 1, 2029, 3000.5} {
			rec := curry2324()
			rec.GP = g
			rec.PTS = p
			got, err := Aggregate([]RawSeasonRecord{rec}, rec.SeasonID)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !approx(got.PTS, p/float64(g), tolerance) {
				t.Fatalf("gp=%d pts=%v expected %v, got %v", g, p, p/float64(g), got.PTS)
			}
		}
	}
}

func TestAggregateZeroGamesYieldsZeroRates(t *testing.T) {
	rec := curry2324()
	rec.GP = 0
	rec.GS = 0

	got, err := Aggregate([]RawSeasonRecord{rec}, "2023-24")
	if err != nil {
		t.Fatalf("expected success for zero games, got %v", err)
	}
	for name, v := range map[string]float64{
		"MIN": got.MIN, "PTS": got.PTS, "REB": got.REB,
		"AST": got.AST, "STL": got.STL, "BLK": got.BLK,
	} {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("%s expected 0 for zero games, got %v", name, v)
		}
	}
	if got.GP != 0 {
		t.Fatalf("expected GP 0, got %d", got.GP)
	}
}

func TestAggregatePassesThroughPercentagesAndTotals(t *testing.T) {
	rec := curry2324()
	rec.FGM, rec.FGA, rec.FG3M, rec.FG3A, rec.FTM, rec.FTA, rec.TOV = 700, 1600, 357, 876, 315, 344, 210

	got, err := Aggregate([]RawSeasonRecord{rec}, "2023-24")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.FGPct != 0.427 || got.FG3Pct != 0.408 || got.FTPct != 0.915 {
		t.Fatalf("expected percentages unchanged, got %v %v %v", got.FGPct, got.FG3Pct, got.FTPct)
	}
	if got.FGM != 700 || got.FGA != 1600 || got.FG3M != 357 || got.FG3A != 876 ||
		got.FTM != 315 || got.FTA != 344 || got.TOV != 210 {
		t.Fatalf("expected shooting totals unchanged, got %+v", got)
	}
}

func TestAggregateSeasonNotFound(t *testing.T) {
	_, err := Aggregate([]RawSeasonRecord{curry2324()}, "1999-00")
	snf, ok := AsSeasonNotFoundError(err)
	if !ok {
		t.Fatalf("expected SeasonNotFoundError, got %v", err)
	}
	if snf.Season != "1999-00" {
		t.Fatalf("expected season on error, got %q", snf.Season)
	}
	if _, err := Aggregate(nil, "2023-24"); err == nil {
		t.Fatal("expected SeasonNotFoundError for empty records")
	}
}

func TestAggregateDuplicateSeasonPrefersCombinedRow(t *testing.T) {
	records := []RawSeasonRecord{
		{SeasonID: "2018-19", TeamAbbreviation: "PHX", GP: 20, PTS: 200},
		{SeasonID: "2018-19", TeamAbbreviation: "MIA", GP: 30, PTS: 450},
		{SeasonID: "2018-19", TeamAbbreviation: TotalTeamAbbreviation, GP: 50, PTS: 650},
	}
	got, err := Aggregate(records, "2018-19")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.TeamAbbreviation != TotalTeamAbbreviation || got.GP != 50 || got.PTS != 13 {
		t.Fatalf("expected combined row, got %+v", got)
	}
}

func TestAggregateDuplicateSeasonWithoutCombinedRowTakesFirst(t *testing.T) {
	records := []RawSeasonRecord{
		{SeasonID: "2018-19", TeamAbbreviation: "PHX", GP: 20, PTS: 200},
		{SeasonID: "2018-19", TeamAbbreviation: "MIA", GP: 30, PTS: 450},
	}
	got, err := Aggregate(records, "2018-19")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.TeamAbbreviation != "PHX" || got.PTS != 10 {
		t.Fatalf("expected first encountered row, got %+v", got)
	}
}

func TestAggregateRejectsInvalidSelectedRecord(t *testing.T) {
	rec := curry2324()
	rec.GP = -1
	_, err := Aggregate([]RawSeasonRecord{rec}, "2023-24")
	se, ok := AsSourceError(err)
	if !ok || se.Field != FieldGP {
		t.Fatalf("expected SourceError on GP, got %v", err)
	}

	rec = curry2324()
	rec.GS = -2
	if _, err := Aggregate([]RawSeasonRecord{rec}, "2023-24"); err == nil {
		t.Fatal("expected SourceError for negative GS")
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	rec := curry2324()
	_ = Normalize(rec)
	if rec.PTS != 2029 || rec.MIN != 2388 {
		t.Fatalf("expected raw record untouched, got %+v", rec)
	}
}
