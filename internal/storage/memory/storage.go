package memory

import (
	"context"
	"sync"

	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.Player
	playerOrder []model.PlayerID
	matches     map[model.MatchID]*model.Match
	matchOrder  []model.MatchID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
		matches: make(map[model.MatchID]*model.Match),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savePlayerLocked(player)
	return nil
}

func (s *Storage) savePlayerLocked(player *model.Player) {
	if _, exists := s.players[player.ID]; !exists {
		s.playerOrder = append(s.playerOrder, player.ID)
	}
	s.players[player.ID] = copyPlayer(player)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return copyPlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		players = append(players, copyPlayer(s.players[id]))
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.players, id)
	for i, pid := range s.playerOrder {
		if pid == id {
			s.playerOrder = append(s.playerOrder[:i], s.playerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveMatchLocked(match)
	return nil
}

func (s *Storage) saveMatchLocked(match *model.Match) {
	if _, exists := s.matches[match.ID]; !exists {
		s.matchOrder = append(s.matchOrder, match.ID)
	}
	s.matches[match.ID] = copyMatch(match)
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return copyMatch(match), nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]*model.Match, 0, len(s.matchOrder))
	for _, id := range s.matchOrder {
		matches = append(matches, copyMatch(s.matches[id]))
	}
	return matches, nil
}

func (s *Storage) SaveMatchAndPlayers(ctx context.Context, match *model.Match, players ...*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveMatchLocked(match)
	for _, p := range players {
		s.savePlayerLocked(p)
	}
	return nil
}

// Ping always succeeds for the in-memory store
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// Records are copied on save and on read so callers never share memory
// with the store, matching the serialize-per-write semantics of the
// Redis backend. Pointer fields are replaced, never mutated through,
// so a shallow copy is enough.

func copyPlayer(p *model.Player) *model.Player {
	cp := *p
	return &cp
}

func copyMatch(m *model.Match) *model.Match {
	cp := *m
	return &cp
}
