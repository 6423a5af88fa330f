package nbastats

import (
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

const (
	colPersonID       = "PERSON_ID"
	colLastCommaFirst = "DISPLAY_LAST_COMMA_FIRST"
	colRosterStatus   = "ROSTERSTATUS"
)

// mapRoster converts the CommonAllPlayers result set into players.
func mapRoster(set resultSet) ([]players.Player, error) {
	idx := make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		idx[h] = i
	}
	for _, col := range []string{colPersonID, colLastCommaFirst, colRosterStatus} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: roster missing column %s", providerName, col)
		}
	}

	out := make([]players.Player, 0, len(set.RowSet))
	for i, row := range set.RowSet {
		if len(row) != len(set.Headers) {
			return nil, fmt.Errorf("%s: roster row %d has %d values for %d headers", providerName, i, len(row), len(set.Headers))
		}
		id, ok := wholeNumber(row[idx[colPersonID]])
		if !ok {
			return nil, fmt.Errorf("%s: roster row %d has invalid %s %v", providerName, i, colPersonID, row[idx[colPersonID]])
		}
		name, _ := row[idx[colLastCommaFirst]].(string)
		first, last := splitLastCommaFirst(name)
		status, _ := wholeNumber(row[idx[colRosterStatus]])

		out = append(out, players.Player{
			ID:        id,
			FirstName: first,
			LastName:  last,
			IsActive:  status == 1,
		})
	}
	return out, nil
}

// splitLastCommaFirst turns "Curry, Stephen" into ("Stephen", "Curry").
// Mononymous players ("Nene") have no comma and map to a last name only.
func splitLastCommaFirst(name string) (first, last string) {
	last, first, found := strings.Cut(name, ",")
	if !found {
		return "", strings.TrimSpace(name)
	}
	return strings.TrimSpace(first), strings.TrimSpace(last)
}

func wholeNumber(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		// ROSTERSTATUS occasionally arrives as a string.
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
