package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchbook-go/internal/dependencies/mocks"
	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/storage/memory"
	"github.com/mcoot/matchbook-go/internal/testutil"
)

type LedgerServiceSuite struct {
	suite.Suite
	service *Service
	clock   *mocks.MockClock
	idgen   *mocks.MockIDGen
	ctx     context.Context
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) SetupTest() {
	store := memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.idgen = mocks.NewMockIDGen()
	s.service = New(store, s.clock, s.idgen, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *LedgerServiceSuite) createPlayer(firstName, lastName string, balance int64) *model.Player {
	player, err := s.service.CreatePlayer(s.ctx, CreatePlayerInput{
		FirstName:           firstName,
		LastName:            lastName,
		Handedness:          "right",
		InitialBalanceCents: balance,
	})
	s.Require().NoError(err)
	return player
}

func (s *LedgerServiceSuite) TestCreatePlayer() {
	player, err := s.service.CreatePlayer(s.ctx, CreatePlayerInput{
		FirstName:           "Alice",
		LastName:            "Smith",
		Handedness:          "left",
		InitialBalanceCents: 1000,
	})
	s.Require().NoError(err)

	s.NotEmpty(player.ID)
	s.Equal("Alice", player.FirstName)
	s.Equal("Alice Smith", player.DisplayName())
	s.Equal(model.HandednessLeft, player.Handedness)
	s.True(player.Active)
	s.Equal(int64(1000), player.BalanceCents)
	s.Zero(player.Joins)
	s.Zero(player.Wins)
	s.Zero(player.Disqualifications)
	s.Zero(player.TotalPoints)
	s.Zero(player.TotalPrizeCents)
	s.Nil(player.ActiveMatchID)
	s.True(player.CreatedAt.Equal(s.clock.CurrentTime))
}

func (s *LedgerServiceSuite) TestCreatePlayerNoLastName() {
	player := s.createPlayer("Madonna", "", 0)
	s.Equal("Madonna", player.DisplayName())
}

func (s *LedgerServiceSuite) TestCreatePlayerInvalidFields() {
	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerInput{
		FirstName:           "Alice3",
		LastName:            "Sm-ith",
		Handedness:          "both",
		InitialBalanceCents: -5,
	})
	s.Require().Error(err)

	var vErr *model.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Equal([]string{"first_name", "last_name", "handedness", "initial_balance_cents"}, vErr.Fields)
}

func (s *LedgerServiceSuite) TestCreatePlayerEmptyFirstName() {
	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerInput{
		FirstName:  "",
		Handedness: "ambidextrous",
	})
	s.True(model.IsValidation(err))
}

func (s *LedgerServiceSuite) TestGetPlayer() {
	created := s.createPlayer("Alice", "Smith", 500)

	player, err := s.service.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, player.ID)
}

func (s *LedgerServiceSuite) TestGetPlayerMalformedID() {
	_, err := s.service.GetPlayer(s.ctx, "not-a-uuid")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *LedgerServiceSuite) TestListPlayersSortedByName() {
	s.createPlayer("Charlie", "Adams", 0)
	s.createPlayer("Alice", "Zor", 0)
	s.createPlayer("Bob", "", 0)

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Alice Zor", players[0].DisplayName())
	s.Equal("Bob", players[1].DisplayName())
	s.Equal("Charlie Adams", players[2].DisplayName())
}

func (s *LedgerServiceSuite) TestListPlayersStableForEqualNames() {
	first := s.createPlayer("Alice", "Smith", 0)
	second := s.createPlayer("Alice", "Smith", 0)

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(first.ID, players[0].ID)
	s.Equal(second.ID, players[1].ID)
}

func (s *LedgerServiceSuite) TestUpdatePlayer() {
	created := s.createPlayer("Alice", "Smith", 0)

	newLast := "Jones"
	inactive := false
	player, err := s.service.UpdatePlayer(s.ctx, created.ID, PlayerUpdate{
		LastName: &newLast,
		Active:   &inactive,
	})
	s.Require().NoError(err)
	s.Equal("Jones", player.LastName)
	s.False(player.Active)

	// Fields not in the update are untouched
	s.Equal("Alice", player.FirstName)
}

func (s *LedgerServiceSuite) TestUpdatePlayerPartial() {
	created := s.createPlayer("Alice", "Smith", 0)

	inactive := false
	player, err := s.service.UpdatePlayer(s.ctx, created.ID, PlayerUpdate{Active: &inactive})
	s.Require().NoError(err)
	s.Equal("Smith", player.LastName)
	s.False(player.Active)
}

func (s *LedgerServiceSuite) TestUpdatePlayerInvalidLastName() {
	created := s.createPlayer("Alice", "Smith", 0)

	bad := "Sm1th"
	_, err := s.service.UpdatePlayer(s.ctx, created.ID, PlayerUpdate{LastName: &bad})
	s.True(model.IsValidation(err))
}

func (s *LedgerServiceSuite) TestUpdatePlayerNotFound() {
	last := "Jones"
	_, err := s.service.UpdatePlayer(s.ctx, "e3b21f0a-1111-4222-8333-444455556666", PlayerUpdate{LastName: &last})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *LedgerServiceSuite) TestDeletePlayer() {
	created := s.createPlayer("Alice", "Smith", 0)

	err := s.service.DeletePlayer(s.ctx, created.ID)
	s.Require().NoError(err)

	_, err = s.service.GetPlayer(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *LedgerServiceSuite) TestDeletePlayerNotFound() {
	err := s.service.DeletePlayer(s.ctx, "e3b21f0a-1111-4222-8333-444455556666")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *LedgerServiceSuite) TestDeposit() {
	created := s.createPlayer("Alice", "Smith", 1000)

	change, err := s.service.Deposit(s.ctx, created.ID, 250)
	s.Require().NoError(err)
	s.Equal(int64(1000), change.OldBalanceCents)
	s.Equal(int64(1250), change.NewBalanceCents)

	player, err := s.service.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(int64(1250), player.BalanceCents)
}

func (s *LedgerServiceSuite) TestDepositZero() {
	created := s.createPlayer("Alice", "Smith", 1000)

	change, err := s.service.Deposit(s.ctx, created.ID, 0)
	s.Require().NoError(err)
	s.Equal(int64(1000), change.NewBalanceCents)
}

func (s *LedgerServiceSuite) TestDepositNegative() {
	created := s.createPlayer("Alice", "Smith", 1000)

	_, err := s.service.Deposit(s.ctx, created.ID, -100)
	s.True(model.IsValidation(err))

	// Balance unchanged after the rejected deposit
	player, err := s.service.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(int64(1000), player.BalanceCents)
}

func (s *LedgerServiceSuite) TestDepositPlayerNotFound() {
	_, err := s.service.Deposit(s.ctx, "e3b21f0a-1111-4222-8333-444455556666", 100)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
