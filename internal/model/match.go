package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Match represents a two-player match with an entry fee and a prize.
// A match is active until it is settled exactly once, by a normal end
// or by disqualification; settled matches never change again.
type Match struct {
	ID MatchID

	Player1ID PlayerID
	Player2ID PlayerID

	// Fixed at creation
	EntryFeeCents int64
	PrizeCents    int64

	// Only ever increased by point awards while the match is active
	Player1Points int64
	Player2Points int64

	CreatedAt time.Time

	// EndedAt is nil while the match is active
	EndedAt *time.Time

	// WinnerID is set when the match is settled and always names one
	// of the two participants
	WinnerID *PlayerID

	// Disqualified is true when settlement happened via disqualification
	Disqualified bool
}

// IsActive reports whether the match has not yet been settled
func (m *Match) IsActive() bool {
	return m.EndedAt == nil
}

// HasPlayer reports whether the given player is one of the two participants
func (m *Match) HasPlayer(id PlayerID) bool {
	return id == m.Player1ID || id == m.Player2ID
}

// Opponent returns the other participant. The caller must have checked
// HasPlayer first.
func (m *Match) Opponent(id PlayerID) PlayerID {
	if id == m.Player1ID {
		return m.Player2ID
	}
	return m.Player1ID
}

// Age is the time elapsed since the match was created
func (m *Match) Age(now time.Time) time.Duration {
	return now.Sub(m.CreatedAt)
}
