package players

import "github.com/preston-bernstein/nba-stats-service/internal/domain/players"

// Store defines the contract for persisting and retrieving the roster.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id int) (players.Player, bool)
	SetPlayers([]players.Player)
}

// Service coordinates roster lookups using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Resolve finds a player by exact first and last name, ignoring case.
// A miss is reported as *players.NotFoundError.
func (s *Service) Resolve(firstName, lastName string) (players.Player, error) {
	return players.Resolve(firstName, lastName, s.store.ListPlayers())
}

// Players returns the current roster.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers swaps the in-memory roster with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}

// Ready reports whether a roster has been loaded.
func (s *Service) Ready() bool {
	return len(s.store.ListPlayers()) > 0
}
