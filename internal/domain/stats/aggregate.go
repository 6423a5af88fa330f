package stats

// PerGame divides a season total by games played. It is the only division
// used for per-game rates and yields 0 when no games were played.
func PerGame(total float64, gamesPlayed int) float64 {
	if gamesPlayed <= 0 {
		return 0
	}
	return total / float64(gamesPlayed)
}

// Aggregate selects the record for season and converts it to per-game figures.
// Traded seasons carry one row per team plus a combined TOT row; the TOT row is
// used when present, otherwise the first matching row.
func Aggregate(records []RawSeasonRecord, season string) (NormalizedStats, error) {
	rec, ok := selectRecord(records, season)
	if !ok {
		return NormalizedStats{}, &SeasonNotFoundError{Season: season}
	}
	if err := validate(rec); err != nil {
		return NormalizedStats{}, err
	}
	return Normalize(rec), nil
}

// Normalize converts counting totals to per-game rates.
func Normalize(rec RawSeasonRecord) NormalizedStats {
	out := NormalizedStats(rec)
	out.MIN = PerGame(rec.MIN, rec.GP)
	out.PTS = PerGame(rec.PTS, rec.GP)
	out.REB = PerGame(rec.REB, rec.GP)
	out.AST = PerGame(rec.AST, rec.GP)
	out.STL = PerGame(rec.STL, rec.GP)
	out.BLK = PerGame(rec.BLK, rec.GP)
	return out
}

func selectRecord(records []RawSeasonRecord, season string) (RawSeasonRecord, bool) {
	var (
		first RawSeasonRecord
		found bool
	)
	for _, r := range records {
		if r.SeasonID != season {
			continue
		}
		if r.TeamAbbreviation == TotalTeamAbbreviation {
			return r, true
		}
		if !found {
			first, found = r, true
		}
	}
	return first, found
}

func validate(rec RawSeasonRecord) error {
	switch {
	case rec.SeasonID == "":
		return invalidField(FieldSeasonID, `""`)
	case rec.GP < 0:
		return invalidField(FieldGP, rec.GP)
	case rec.GS < 0:
		return invalidField(FieldGS, rec.GS)
	}
	return nil
}
