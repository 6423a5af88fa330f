package players

import (
	"errors"
	"testing"
)

func sampleRoster() []Player {
	return []Player{
		{ID: 1, FirstName: "Stephen", LastName: "Curry", IsActive: true},
		{ID: 2, FirstName: "Seth", LastName: "Curry", IsActive: false},
		{ID: 3, FirstName: "Marcus", LastName: "Morris", IsActive: true},
		{ID: 4, FirstName: "Marcus", LastName: "Morris", IsActive: false},
	}
}

func TestResolveMatchesAnyCasing(t *testing.T) {
	roster := sampleRoster()
	cases := [][2]string{
		{"Stephen", "Curry"},
		{"stephen", "curry"},
		{"STEPHEN", "CURRY"},
		{"sTePhEn", "cUrRy"},
		{"  Stephen ", " Curry  "},
	}
	for _, c := range cases {
		got, err := Resolve(c[0], c[1], roster)
		if err != nil {
			t.Fatalf("resolve %q %q: unexpected error %v", c[0], c[1], err)
		}
		if got.ID != 1 {
			t.Fatalf("resolve %q %q: expected id 1, got %d", c[0], c[1], got.ID)
		}
	}
}

func TestResolveReturnsNotFoundWithQueriedNames(t *testing.T) {
	_, err := Resolve("Steph", "Curry", sampleRoster())
	nf, ok := AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.FirstName != "Steph" || nf.LastName != "Curry" {
		t.Fatalf("expected queried names on error, got %+v", nf)
	}
	if nf.Error() != "player Steph Curry not found" {
		t.Fatalf("unexpected message %q", nf.Error())
	}
}

func TestResolveIsExactNotSubstring(t *testing.T) {
	roster := sampleRoster()
	for _, c := range [][2]string{{"Steph", "Curry"}, {"Stephen", "Cur"}, {"Stephen", "Curry Jr"}, {"", ""}} {
		if _, err := Resolve(c[0], c[1], roster); err == nil {
			t.Fatalf("expected no match for %q %q", c[0], c[1])
		}
	}
}

func TestResolveRequiresBothNames(t *testing.T) {
	if _, err := Resolve("Seth", "Morris", sampleRoster()); err == nil {
		t.Fatal("expected mismatched first/last pair to be not found")
	}
}

func TestResolveFirstMatchWinsOnDuplicates(t *testing.T) {
	got, err := Resolve("marcus", "morris", sampleRoster())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("expected first roster entry (id 3), got %d", got.ID)
	}
}

func TestResolveEmptyRoster(t *testing.T) {
	_, err := Resolve("Stephen", "Curry", nil)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on empty roster, got %v", err)
	}
}

func TestAsNotFoundErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsNotFoundError(errors.New("boom")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
