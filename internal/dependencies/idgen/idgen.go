package idgen

import "github.com/google/uuid"

// Generator produces opaque record identifiers. It can be mocked for
// deterministic tests.
type Generator interface {
	// NewID returns a fresh unique identifier
	NewID() string
}

// Valid reports whether id is a well-formed identifier. Malformed ids
// can never resolve to a record, so callers treat them as not-found
// rather than passing them to storage.
func Valid(id string) bool {
	return uuid.Validate(id) == nil
}

// UUIDGenerator implements Generator with random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
