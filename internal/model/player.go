package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Handedness is a player's dominant hand
type Handedness string

const (
	HandednessLeft         Handedness = "left"
	HandednessRight        Handedness = "right"
	HandednessAmbidextrous Handedness = "ambidextrous"
)

// ParseHandedness converts a string to a Handedness, reporting whether
// it is one of the three recognised values
func ParseHandedness(s string) (Handedness, bool) {
	switch Handedness(s) {
	case HandednessLeft, HandednessRight, HandednessAmbidextrous:
		return Handedness(s), true
	}
	return "", false
}

// Player represents a ledger participant
type Player struct {
	ID         PlayerID
	FirstName  string
	LastName   string // optional
	Handedness Handedness
	Active     bool

	// BalanceCents is mutated only by deposits and match settlement
	BalanceCents int64

	// Lifetime counters, monotonically non-decreasing
	Joins             int
	Wins              int
	Disqualifications int
	TotalPoints       int64
	TotalPrizeCents   int64

	// ActiveMatchID is non-nil exactly while the player is committed
	// to an unsettled match
	ActiveMatchID *MatchID

	CreatedAt time.Time
}

// DisplayName is the name players are listed under: first name plus
// the optional last name
func (p *Player) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Efficiency is the player's win rate over matches joined, 0 before
// their first join
func (p *Player) Efficiency() float64 {
	if p.Joins == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Joins)
}

// InMatch reports whether the player is committed to an active match
func (p *Player) InMatch() bool {
	return p.ActiveMatchID != nil
}
