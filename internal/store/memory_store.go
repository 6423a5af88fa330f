package store

import (
	"sync"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe snapshot of the roster in memory.
// Roster order is preserved since name resolution picks the first match.
type MemoryStore struct {
	mu     sync.RWMutex
	roster []players.Player
	byID   map[int]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[int]int),
	}
}

// ListPlayers returns a copy of the current roster in upstream order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.roster))
	copy(result, s.roster)
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.roster[idx], true
}

// SetPlayers replaces the existing roster with a new snapshot.
// When an ID repeats, lookups by ID return its first occurrence.
func (s *MemoryStore) SetPlayers(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = make([]players.Player, len(roster))
	copy(s.roster, roster)
	s.byID = make(map[int]int, len(roster))
	for i, p := range s.roster {
		if _, seen := s.byID[p.ID]; !seen {
			s.byID[p.ID] = i
		}
	}
}

// Len reports how many players are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roster)
}
