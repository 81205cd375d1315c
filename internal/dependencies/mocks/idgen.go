package mocks

import (
	"github.com/google/uuid"

	"github.com/mcoot/matchbook-go/internal/dependencies/idgen"
)

// MockIDGen is a mock implementation of Generator for testing
type MockIDGen struct {
	// Results is a queue of ids to return from NewID
	Results []string
	index   int
}

// Ensure MockIDGen implements Generator
var _ idgen.Generator = (*MockIDGen)(nil)

// NewMockIDGen creates a new MockIDGen
func NewMockIDGen() *MockIDGen {
	return &MockIDGen{}
}

// NewID returns the next queued id, or a fresh UUID if none remain.
// Queued ids should be valid UUIDs or downstream format checks will
// treat them as unresolvable.
func (g *MockIDGen) NewID() string {
	if g.index >= len(g.Results) {
		return uuid.NewString()
	}
	result := g.Results[g.index]
	g.index++
	return result
}

// Queue adds ids to the result queue
func (g *MockIDGen) Queue(ids ...string) {
	g.Results = append(g.Results, ids...)
}

// Reset clears all queued ids
func (g *MockIDGen) Reset() {
	g.Results = nil
	g.index = 0
}
