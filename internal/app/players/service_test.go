package players

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

type stubPlayerStore struct {
	items []players.Player
	byID  map[int]players.Player
}

func (s *stubPlayerStore) ListPlayers() []players.Player { return s.items }
func (s *stubPlayerStore) GetPlayer(id int) (players.Player, bool) {
	val, ok := s.byID[id]
	return val, ok
}
func (s *stubPlayerStore) SetPlayers(items []players.Player) { s.items = items }

func TestPlayersService(t *testing.T) {
	curry := players.Player{ID: 201939, FirstName: "Stephen", LastName: "Curry", IsActive: true}
	store := &stubPlayerStore{
		items: []players.Player{curry},
		byID:  map[int]players.Player{curry.ID: curry},
	}
	svc := NewService(store)

	if len(svc.Players()) != 1 {
		t.Fatalf("expected players from store")
	}
	if !svc.Ready() {
		t.Fatalf("expected service ready with a roster")
	}
	if _, ok := svc.PlayerByID(201939); !ok {
		t.Fatalf("expected player by id")
	}

	svc.ReplacePlayers([]players.Player{{ID: 2}})
	if len(store.items) != 1 || store.items[0].ID != 2 {
		t.Fatalf("expected replace to set store items")
	}
}

func TestPlayersServiceResolve(t *testing.T) {
	store := &stubPlayerStore{items: []players.Player{
		{ID: 201939, FirstName: "Stephen", LastName: "Curry"},
		{ID: 2544, FirstName: "LeBron", LastName: "James"},
	}}
	svc := NewService(store)

	p, err := svc.Resolve(" lebron ", "JAMES")
	if err != nil || p.ID != 2544 {
		t.Fatalf("expected LeBron, got %+v err %v", p, err)
	}

	_, err = svc.Resolve("Steph", "Curry")
	nf, ok := players.AsNotFoundError(err)
	if !ok || nf.FirstName != "Steph" || nf.LastName != "Curry" {
		t.Fatalf("expected not found error carrying the query, got %v", err)
	}
}

func TestPlayersServiceNotReadyWhenEmpty(t *testing.T) {
	svc := NewService(&stubPlayerStore{})
	if svc.Ready() {
		t.Fatal("expected not ready without a roster")
	}
}
