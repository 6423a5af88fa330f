package stats

import "sort"

// PreferredSeason is the season selected by default when a player has it.
const PreferredSeason = "2023-24"

// ListSeasons returns every record's season, most recent first. "YYYY-YY"
// tokens sort chronologically as strings. Duplicates are kept.
func ListSeasons(records []RawSeasonRecord) []string {
	seasons := make([]string, 0, len(records))
	for _, r := range records {
		seasons = append(seasons, r.SeasonID)
	}
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i] > seasons[j] })
	return seasons
}

// DefaultSeason picks PreferredSeason when listed, else the first (most
// recent) season. Returns "" for an empty list.
func DefaultSeason(seasons []string) string {
	for _, s := range seasons {
		if s == PreferredSeason {
			return s
		}
	}
	if len(seasons) == 0 {
		return ""
	}
	return seasons[0]
}
