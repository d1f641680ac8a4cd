package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for trace ids, session tokens and
// anti-CSRF state values.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 UUID, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Random returns a v4 UUID: 122 bits from crypto/rand, nothing derived from
// the clock. Used where the value must be unguessable.
func (g *UUIDGenerator) Random() string {
	return uuid.NewString()
}
