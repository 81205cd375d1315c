package response

import (
	"time"

	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/services/ledger"
)

// Player represents a player in API responses
type Player struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name,omitempty"`
	Name              string    `json:"name"`
	Handedness        string    `json:"handedness"`
	Active            bool      `json:"active"`
	BalanceCents      int64     `json:"balance_cents"`
	Joins             int       `json:"joins"`
	Wins              int       `json:"wins"`
	Disqualifications int       `json:"disqualifications"`
	TotalPoints       int64     `json:"total_points"`
	TotalPrizeCents   int64     `json:"total_prize_cents"`
	Efficiency        float64   `json:"efficiency"`
	ActiveMatchID     *string   `json:"active_match_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	var activeMatch *string
	if p.ActiveMatchID != nil {
		id := string(*p.ActiveMatchID)
		activeMatch = &id
	}
	return Player{
		ID:                string(p.ID),
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Name:              p.DisplayName(),
		Handedness:        string(p.Handedness),
		Active:            p.Active,
		BalanceCents:      p.BalanceCents,
		Joins:             p.Joins,
		Wins:              p.Wins,
		Disqualifications: p.Disqualifications,
		TotalPoints:       p.TotalPoints,
		TotalPrizeCents:   p.TotalPrizeCents,
		Efficiency:        p.Efficiency(),
		ActiveMatchID:     activeMatch,
		CreatedAt:         p.CreatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Deposit is the response for a deposit operation
type Deposit struct {
	OldBalanceCents int64 `json:"old_balance_cents"`
	NewBalanceCents int64 `json:"new_balance_cents"`
}

// DepositFromChange converts a ledger.BalanceChange
func DepositFromChange(c *ledger.BalanceChange) Deposit {
	return Deposit{
		OldBalanceCents: c.OldBalanceCents,
		NewBalanceCents: c.NewBalanceCents,
	}
}

// Match represents a match in API responses. Player display names are
// resolved at formatting time so listings are readable without extra
// round trips.
type Match struct {
	ID            string     `json:"id"`
	Player1ID     string     `json:"player1_id"`
	Player1Name   string     `json:"player1_name"`
	Player1Points int64      `json:"player1_points"`
	Player2ID     string     `json:"player2_id"`
	Player2Name   string     `json:"player2_name"`
	Player2Points int64      `json:"player2_points"`
	EntryFeeCents int64      `json:"entry_fee_cents"`
	PrizeCents    int64      `json:"prize_cents"`
	WinnerID      *string    `json:"winner_id"`
	Disqualified  bool       `json:"disqualified"`
	IsActive      bool       `json:"is_active"`
	AgeSeconds    int64      `json:"age_seconds"`
	CreatedAt     time.Time  `json:"created_at"`
	EndedAt       *time.Time `json:"ended_at"`
}

// MatchFromModel converts a model.Match, filling in the participants'
// display names
func MatchFromModel(m *model.Match, player1Name, player2Name string, now time.Time) Match {
	var winner *string
	if m.WinnerID != nil {
		id := string(*m.WinnerID)
		winner = &id
	}
	return Match{
		ID:            string(m.ID),
		Player1ID:     string(m.Player1ID),
		Player1Name:   player1Name,
		Player1Points: m.Player1Points,
		Player2ID:     string(m.Player2ID),
		Player2Name:   player2Name,
		Player2Points: m.Player2Points,
		EntryFeeCents: m.EntryFeeCents,
		PrizeCents:    m.PrizeCents,
		WinnerID:      winner,
		Disqualified:  m.Disqualified,
		IsActive:      m.IsActive(),
		AgeSeconds:    int64(m.Age(now).Seconds()),
		CreatedAt:     m.CreatedAt,
		EndedAt:       m.EndedAt,
	}
}
