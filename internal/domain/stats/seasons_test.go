package stats

import (
	"reflect"
	"testing"
)

func recordsFor(seasons ...string) []RawSeasonRecord {
	out := make([]RawSeasonRecord, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, RawSeasonRecord{SeasonID: s})
	}
	return out
}

func TestListSeasonsMostRecentFirst(t *testing.T) {
	got := ListSeasons(recordsFor("2021-22", "2023-24", "2022-23"))
	want := []string{"2023-24", "2022-23", "2021-22"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListSeasonsKeepsDuplicates(t *testing.T) {
	got := ListSeasons(recordsFor("2017-18", "2018-19", "2018-19", "2019-20", "2018-19"))
	want := []string{"2019-20", "2018-19", "2018-19", "2018-19", "2017-18"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListSeasonsCrossesCentury(t *testing.T) {
	got := ListSeasons(recordsFor("1999-00", "2000-01", "1998-99"))
	want := []string{"2000-01", "1999-00", "1998-99"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListSeasonsEmpty(t *testing.T) {
	if got := ListSeasons(nil); len(got) != 0 {
		t.Fatalf("expected no seasons, got %v", got)
	}
}

func TestDefaultSeason(t *testing.T) {
	cases := []struct {
		seasons []string
		want    string
	}{
		{[]string{"2024-25", "2023-24", "2022-23"}, "2023-24"},
		{[]string{"2022-23", "2021-22"}, "2022-23"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := DefaultSeason(c.seasons); got != c.want {
			t.Fatalf("seasons %v expected %q, got %q", c.seasons, c.want, got)
		}
	}
}
