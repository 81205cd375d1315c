package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHandedness(t *testing.T) {
	for _, valid := range []string{"left", "right", "ambidextrous"} {
		h, ok := ParseHandedness(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, string(h))
	}

	for _, invalid := range []string{"", "both", "Left", "southpaw"} {
		_, ok := ParseHandedness(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestPlayerDisplayName(t *testing.T) {
	assert.Equal(t, "Alice Smith", (&Player{FirstName: "Alice", LastName: "Smith"}).DisplayName())
	assert.Equal(t, "Madonna", (&Player{FirstName: "Madonna"}).DisplayName())
}

func TestPlayerEfficiency(t *testing.T) {
	// No joins yet means no efficiency, not a division by zero
	assert.Zero(t, (&Player{}).Efficiency())
	assert.Equal(t, 0.5, (&Player{Joins: 4, Wins: 2}).Efficiency())
	assert.Equal(t, 1.0, (&Player{Joins: 3, Wins: 3}).Efficiency())
}

func TestMatchHelpers(t *testing.T) {
	m := &Match{Player1ID: "p1", Player2ID: "p2"}

	assert.True(t, m.IsActive())
	assert.True(t, m.HasPlayer("p1"))
	assert.True(t, m.HasPlayer("p2"))
	assert.False(t, m.HasPlayer("p3"))
	assert.Equal(t, PlayerID("p2"), m.Opponent("p1"))
	assert.Equal(t, PlayerID("p1"), m.Opponent("p2"))

	ended := time.Now()
	m.EndedAt = &ended
	assert.False(t, m.IsActive())
}

func TestMatchAge(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := &Match{CreatedAt: created}

	assert.Equal(t, 90*time.Second, m.Age(created.Add(90*time.Second)))
}
