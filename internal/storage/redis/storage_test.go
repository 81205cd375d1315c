package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchbook-go/internal/model"
)

type RedisStorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestRedisStorageSuite(t *testing.T) {
	suite.Run(t, new(RedisStorageSuite))
}

func (s *RedisStorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *RedisStorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *RedisStorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "player-1",
		FirstName:    "Alice",
		LastName:     "Smith",
		Handedness:   model.HandednessRight,
		Active:       true,
		BalanceCents: 2500,
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal("Smith", retrieved.LastName)
	s.Equal(int64(2500), retrieved.BalanceCents)
	s.True(retrieved.CreatedAt.Equal(player.CreatedAt))
}

func (s *RedisStorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *RedisStorageSuite) TestListPlayersKeepsInsertionOrder() {
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		err := s.storage.SavePlayer(s.ctx, &model.Player{
			ID:        model.PlayerID("player-" + name),
			FirstName: name,
		})
		s.Require().NoError(err)
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Charlie", players[0].FirstName)
	s.Equal("Alice", players[1].FirstName)
	s.Equal("Bob", players[2].FirstName)
}

func (s *RedisStorageSuite) TestResaveDoesNotDuplicateInList() {
	player := &model.Player{ID: "player-1", FirstName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	player.BalanceCents = 700
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(int64(700), players[0].BalanceCents)
}

func (s *RedisStorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", FirstName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *RedisStorageSuite) TestDeletePlayerNotFound() {
	err := s.storage.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *RedisStorageSuite) TestSaveAndGetMatch() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	winner := model.PlayerID("player-1")
	ended := now.Add(time.Hour)
	match := &model.Match{
		ID:            "match-1",
		Player1ID:     "player-1",
		Player2ID:     "player-2",
		EntryFeeCents: 100,
		PrizeCents:    300,
		Player1Points: 7,
		Player2Points: 3,
		CreatedAt:     now,
		EndedAt:       &ended,
		WinnerID:      &winner,
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(int64(7), retrieved.Player1Points)
	s.Require().NotNil(retrieved.WinnerID)
	s.Equal(winner, *retrieved.WinnerID)
	s.False(retrieved.IsActive())
}

func (s *RedisStorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *RedisStorageSuite) TestListMatchesKeepsInsertionOrder() {
	for _, id := range []string{"match-1", "match-2", "match-3"} {
		err := s.storage.SaveMatch(s.ctx, &model.Match{ID: model.MatchID(id)})
		s.Require().NoError(err)
	}

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 3)
	s.Equal(model.MatchID("match-1"), matches[0].ID)
	s.Equal(model.MatchID("match-3"), matches[2].ID)
}

func (s *RedisStorageSuite) TestSaveMatchAndPlayers() {
	player1 := &model.Player{ID: "player-1", FirstName: "Alice", BalanceCents: 900}
	player2 := &model.Player{ID: "player-2", FirstName: "Bob", BalanceCents: 900}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player1))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player2))

	matchID := model.MatchID("match-1")
	player1.ActiveMatchID = &matchID
	player2.ActiveMatchID = &matchID
	match := &model.Match{ID: matchID, Player1ID: "player-1", Player2ID: "player-2"}

	err := s.storage.SaveMatchAndPlayers(s.ctx, match, player1, player2)
	s.Require().NoError(err)

	retrievedMatch, err := s.storage.GetMatch(s.ctx, matchID)
	s.Require().NoError(err)
	s.Equal(matchID, retrievedMatch.ID)

	for _, id := range []model.PlayerID{"player-1", "player-2"} {
		p, err := s.storage.GetPlayer(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(p.ActiveMatchID)
		s.Equal(matchID, *p.ActiveMatchID)
	}
}

func (s *RedisStorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
