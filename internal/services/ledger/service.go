package ledger

import (
	"context"
	"log/slog"
	"regexp"
	"sort"

	"github.com/mcoot/matchbook-go/internal/dependencies/clock"
	"github.com/mcoot/matchbook-go/internal/dependencies/idgen"
	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/storage"
)

// Names are alphabetic only
var namePattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Service owns player records and balance mutations
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	idgen   idgen.Generator
	logger  *slog.Logger
}

// New creates a new ledger Service
func New(storage storage.Storage, clock clock.Clock, idgen idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		idgen:   idgen,
		logger:  logger,
	}
}

// CreatePlayerInput holds the fields for creating a player
type CreatePlayerInput struct {
	FirstName           string
	LastName            string
	Handedness          string
	InitialBalanceCents int64
}

// CreatePlayer validates the input and inserts a new player with all
// counters zeroed
func (s *Service) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*model.Player, error) {
	var invalid []string

	if !namePattern.MatchString(input.FirstName) {
		invalid = append(invalid, "first_name")
	}
	if input.LastName != "" && !namePattern.MatchString(input.LastName) {
		invalid = append(invalid, "last_name")
	}
	handedness, ok := model.ParseHandedness(input.Handedness)
	if !ok {
		invalid = append(invalid, "handedness")
	}
	if input.InitialBalanceCents < 0 {
		invalid = append(invalid, "initial_balance_cents")
	}
	if len(invalid) > 0 {
		return nil, model.NewValidationError(invalid...)
	}

	player := &model.Player{
		ID:           model.PlayerID(s.idgen.NewID()),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Handedness:   handedness,
		Active:       true,
		BalanceCents: input.InitialBalanceCents,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.String("player_id", string(player.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.DisplayName()),
	)

	return player, nil
}

// GetPlayer retrieves a player by id. Malformed ids can never resolve,
// so they report not-found rather than erroring further down.
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if !idgen.Valid(string(id)) {
		return nil, model.ErrPlayerNotFound
	}
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns all players sorted ascending by display name.
// The sort is stable, so players with identical names keep their
// insertion order.
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].DisplayName() < players[j].DisplayName()
	})
	return players, nil
}

// PlayerUpdate holds the optional fields for a partial player update.
// Nil fields are left unchanged.
type PlayerUpdate struct {
	LastName *string
	Active   *bool
}

// UpdatePlayer applies the provided fields to an existing player
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	if update.LastName != nil && *update.LastName != "" && !namePattern.MatchString(*update.LastName) {
		return nil, model.NewValidationError("last_name")
	}

	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.LastName != nil {
		player.LastName = *update.LastName
	}
	if update.Active != nil {
		player.Active = *update.Active
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer permanently removes a player record
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if !idgen.Valid(string(id)) {
		return model.ErrPlayerNotFound
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// BalanceChange reports a balance before and after a deposit
type BalanceChange struct {
	OldBalanceCents int64
	NewBalanceCents int64
}

// Deposit adds a non-negative amount to a player's balance
func (s *Service) Deposit(ctx context.Context, id model.PlayerID, amountCents int64) (*BalanceChange, error) {
	if amountCents < 0 {
		return nil, model.NewValidationError("amount_cents")
	}

	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	change := &BalanceChange{
		OldBalanceCents: player.BalanceCents,
		NewBalanceCents: player.BalanceCents + amountCents,
	}
	player.BalanceCents = change.NewBalanceCents

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("deposit applied",
		slog.String("player_id", string(id)),
		slog.Int64("amount_cents", amountCents),
		slog.Int64("new_balance_cents", change.NewBalanceCents),
	)

	return change, nil
}
