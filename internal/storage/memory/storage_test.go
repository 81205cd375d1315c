package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchbook-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "player-1",
		FirstName:    "Alice",
		Handedness:   model.HandednessLeft,
		Active:       true,
		BalanceCents: 1000,
		CreatedAt:    time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.FirstName, retrieved.FirstName)
	s.Equal(int64(1000), retrieved.BalanceCents)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersKeepsInsertionOrder() {
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

func (s *StorageSuite) TestResaveDoesNotDuplicateInList() {
	player := &model.Player{ID: "player-1", FirstName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.BalanceCents = 500
	_ = s.storage.SavePlayer(s.ctx, player)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
	s.Equal(int64(500), players[0].BalanceCents)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", FirstName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	err := s.storage.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := &model.Match{
		ID:            "match-1",
		Player1ID:     "player-1",
		Player2ID:     "player-2",
		EntryFeeCents: 100,
		PrizeCents:    300,
		CreatedAt:     time.Now(),
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(int64(300), retrieved.PrizeCents)
	s.True(retrieved.IsActive())
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestListMatchesKeepsInsertionOrder() {
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

func (s *StorageSuite) TestSaveMatchAndPlayers() {
	player1 := &model.Player{ID: "player-1", FirstName: "Alice", BalanceCents: 900}
	player2 := &model.Player{ID: "player-2", FirstName: "Bob", BalanceCents: 900}
	_ = s.storage.SavePlayer(s.ctx, player1)
	_ = s.storage.SavePlayer(s.ctx, player2)

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

func (s *StorageSuite) TestRecordsAreDetached() {
	player := &model.Player{ID: "player-1", FirstName: "Alice", BalanceCents: 100}
	_ = s.storage.SavePlayer(s.ctx, player)

	// Mutating the caller's record after save does not touch the store
	player.BalanceCents = 999
	stored, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(100), stored.BalanceCents)

	// Mutating a fetched record does not either, until it is saved back
	stored.BalanceCents = 777
	again, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(100), again.BalanceCents)

	match := &model.Match{ID: "match-1", Player1Points: 3}
	_ = s.storage.SaveMatch(s.ctx, match)
	fetched, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	fetched.Player1Points = 99
	refetched, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(int64(3), refetched.Player1Points)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
