package match

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/mcoot/matchbook-go/internal/dependencies/clock"
	"github.com/mcoot/matchbook-go/internal/dependencies/idgen"
	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/storage"
)

// RecentEndedLimit is how many recently ended matches the combined
// listing includes alongside the active ones
const RecentEndedLimit = 4

// Controller manages the match state machine and cross-entity
// settlement. A match moves from active to ended exactly once, via
// End or Disqualify, and never changes after that.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	idgen   idgen.Generator
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(storage storage.Storage, clock clock.Clock, idgen idgen.Generator, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		idgen:   idgen,
		logger:  logger,
	}
}

// CreateMatchInput holds the fields for creating a match
type CreateMatchInput struct {
	Player1ID     model.PlayerID
	Player2ID     model.PlayerID
	EntryFeeCents int64
	PrizeCents    int64
}

// CreateMatch commits two players to a new active match. Both players
// are debited the entry fee, have their join counter incremented, and
// are linked to the match; all four records are written as one atomic
// storage call.
func (c *Controller) CreateMatch(ctx context.Context, input CreateMatchInput) (*model.Match, error) {
	var invalid []string
	if input.EntryFeeCents < 0 {
		invalid = append(invalid, "entry_fee_cents")
	}
	if input.PrizeCents < 0 {
		invalid = append(invalid, "prize_cents")
	}
	if input.Player1ID == input.Player2ID {
		invalid = append(invalid, "player2_id")
	}
	if len(invalid) > 0 {
		return nil, model.NewValidationError(invalid...)
	}

	player1, err := c.getPlayer(ctx, input.Player1ID)
	if err != nil {
		return nil, err
	}
	player2, err := c.getPlayer(ctx, input.Player2ID)
	if err != nil {
		return nil, err
	}

	if player1.InMatch() || player2.InMatch() {
		return nil, model.ErrAlreadyInMatch
	}

	if player1.BalanceCents < input.EntryFeeCents || player2.BalanceCents < input.EntryFeeCents {
		return nil, model.ErrInsufficientFunds
	}

	match := &model.Match{
		ID:            model.MatchID(c.idgen.NewID()),
		Player1ID:     player1.ID,
		Player2ID:     player2.ID,
		EntryFeeCents: input.EntryFeeCents,
		PrizeCents:    input.PrizeCents,
		CreatedAt:     c.clock.Now(),
	}

	for _, p := range []*model.Player{player1, player2} {
		p.BalanceCents -= input.EntryFeeCents
		p.Joins++
		p.ActiveMatchID = &match.ID
	}

	if err := c.storage.SaveMatchAndPlayers(ctx, match, player1, player2); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("player1_id", string(player1.ID)),
		slog.String("player2_id", string(player2.ID)),
		slog.Int64("entry_fee_cents", input.EntryFeeCents),
		slog.Int64("prize_cents", input.PrizeCents),
	)

	return match, nil
}

// GetMatch retrieves a match by id
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	if !idgen.Valid(string(id)) {
		return nil, model.ErrMatchNotFound
	}
	return c.storage.GetMatch(ctx, id)
}

// ListMatches returns the current matches: all active matches sorted
// descending by prize, followed by up to RecentEndedLimit ended
// matches, most recently ended first
func (c *Controller) ListMatches(ctx context.Context) ([]*model.Match, error) {
	all, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	var active, ended []*model.Match
	for _, m := range all {
		if m.IsActive() {
			active = append(active, m)
		} else {
			ended = append(ended, m)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].PrizeCents > active[j].PrizeCents
	})
	sort.SliceStable(ended, func(i, j int) bool {
		return ended[i].EndedAt.After(*ended[j].EndedAt)
	})
	if len(ended) > RecentEndedLimit {
		ended = ended[:RecentEndedLimit]
	}

	return append(active, ended...), nil
}

// AwardPoints adds points to one participant's score on an active match
// and to their lifetime total
func (c *Controller) AwardPoints(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, points int64) (*model.Match, error) {
	if points <= 0 {
		return nil, model.NewValidationError("points")
	}

	match, err := c.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	player, err := c.getPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !match.IsActive() {
		return nil, model.ErrMatchNotActive
	}
	if !match.HasPlayer(player.ID) {
		return nil, model.ErrPlayerNotInMatch
	}

	if player.ID == match.Player1ID {
		match.Player1Points += points
	} else {
		match.Player2Points += points
	}
	player.TotalPoints += points

	if err := c.storage.SaveMatchAndPlayers(ctx, match, player); err != nil {
		return nil, err
	}

	return match, nil
}

// End settles an active match in favour of the player with strictly
// more points. Tied matches cannot be ended; they stay active and the
// call fails with ErrMatchNotActive.
func (c *Controller) End(ctx context.Context, matchID model.MatchID) (*model.Match, error) {
	match, err := c.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.IsActive() || match.Player1Points == match.Player2Points {
		return nil, model.ErrMatchNotActive
	}

	winnerID := match.Player1ID
	if match.Player2Points > match.Player1Points {
		winnerID = match.Player2ID
	}

	return c.settle(ctx, match, winnerID, nil)
}

// Disqualify settles an active match against one participant; the
// other participant is declared winner with the usual settlement
func (c *Controller) Disqualify(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	player, err := c.getPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !match.HasPlayer(player.ID) {
		return nil, model.ErrPlayerNotFound
	}

	if !match.IsActive() {
		return nil, model.ErrMatchNotActive
	}

	match.Disqualified = true
	return c.settle(ctx, match, match.Opponent(player.ID), player)
}

// settle ends the match: credits the winner, clears the players'
// active-match linkage, and bumps the disqualified player's counter
// when present. A participant deleted while the match was active does
// not block settlement; their record is simply skipped, and the other
// player is still unlinked. The match and the surviving players are
// written atomically.
func (c *Controller) settle(ctx context.Context, match *model.Match, winnerID model.PlayerID, disqualified *model.Player) (*model.Match, error) {
	player1, err := c.getPlayerIfExists(ctx, match.Player1ID)
	if err != nil {
		return nil, err
	}
	player2, err := c.getPlayerIfExists(ctx, match.Player2ID)
	if err != nil {
		return nil, err
	}
	if disqualified != nil {
		// Use the already-fetched record so the counter bump is not lost
		if player1 != nil && disqualified.ID == player1.ID {
			player1 = disqualified
		} else if player2 != nil && disqualified.ID == player2.ID {
			player2 = disqualified
		}
		disqualified.Disqualifications++
	}

	now := c.clock.Now()
	match.EndedAt = &now
	match.WinnerID = &winnerID

	var winner *model.Player
	if player1 != nil && winnerID == player1.ID {
		winner = player1
	} else if player2 != nil && winnerID == player2.ID {
		winner = player2
	}
	if winner != nil {
		winner.BalanceCents += match.PrizeCents
		winner.TotalPrizeCents += match.PrizeCents
		winner.Wins++
	}

	players := make([]*model.Player, 0, 2)
	for _, p := range []*model.Player{player1, player2} {
		if p != nil {
			p.ActiveMatchID = nil
			players = append(players, p)
		}
	}

	if err := c.storage.SaveMatchAndPlayers(ctx, match, players...); err != nil {
		c.logger.Error("failed to settle match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match settled",
		slog.String("match_id", string(match.ID)),
		slog.String("winner_id", string(winnerID)),
		slog.Bool("disqualified", match.Disqualified),
	)

	return match, nil
}

// getPlayer resolves a player id, treating malformed ids as not-found
func (c *Controller) getPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if !idgen.Valid(string(id)) {
		return nil, model.ErrPlayerNotFound
	}
	return c.storage.GetPlayer(ctx, id)
}

// getPlayerIfExists resolves a player id, returning nil without error
// when the record no longer exists
func (c *Controller) getPlayerIfExists(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := c.getPlayer(ctx, id)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}
