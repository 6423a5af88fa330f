package nbastats

import "testing"

func TestSplitLastCommaFirst(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Curry, Stephen", "Stephen", "Curry"},
		{"Antetokounmpo, Giannis", "Giannis", "Antetokounmpo"},
		{"Nene", "", "Nene"},
		{" Jr., Gary Trent ", "Gary Trent", "Jr."},
	}
	for _, tc := range cases {
		first, last := splitLastCommaFirst(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("split %q expected (%q,%q), got (%q,%q)", tc.in, tc.first, tc.last, first, last)
		}
	}
}

func TestMapRosterRejectsMissingColumns(t *testing.T) {
	_, err := mapRoster(resultSet{Headers: []string{colPersonID}, RowSet: [][]any{{1.0}}})
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestMapRosterRejectsInvalidID(t *testing.T) {
	set := resultSet{
		Headers: []string{colPersonID, colLastCommaFirst, colRosterStatus},
		RowSet:  [][]any{{"abc", "Curry, Stephen", 1.0}},
	}
	if _, err := mapRoster(set); err == nil {
		t.Fatal("expected error for non-numeric person id")
	}
}

func TestMapRosterRejectsShortRow(t *testing.T) {
	set := resultSet{
		Headers: []string{colPersonID, colLastCommaFirst, colRosterStatus},
		RowSet:  [][]any{{201939.0, "Curry, Stephen"}},
	}
	if _, err := mapRoster(set); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestMapRosterAcceptsStringStatus(t *testing.T) {
	set := resultSet{
		Headers: []string{colPersonID, colLastCommaFirst, colRosterStatus},
		RowSet:  [][]any{{201939.0, "Curry, Stephen", "1"}},
	}
	roster, err := mapRoster(set)
	if err != nil || len(roster) != 1 || !roster[0].IsActive {
		t.Fatalf("expected active player, got %+v err %v", roster, err)
	}
}
