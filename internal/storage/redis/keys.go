package redis

import (
	"fmt"

	"github.com/mcoot/matchbook-go/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "matchbook"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the LIST of player ids in
// insertion order
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// matchIndexKey returns the Redis key for the LIST of match ids in
// insertion order
func matchIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}
