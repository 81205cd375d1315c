package storage

import (
	"context"

	"github.com/mcoot/matchbook-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// ListPlayers returns all players in insertion order
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context) ([]*model.Match, error)

	// SaveMatchAndPlayers persists a match together with the given
	// player records as one atomic write. Match creation and
	// settlement touch up to three records; applying them in a single
	// call means later reads never observe a partially applied
	// transition.
	SaveMatchAndPlayers(ctx context.Context, match *model.Match, players ...*model.Player) error

	// Ping verifies connectivity to the backing store
	Ping(ctx context.Context) error
}
