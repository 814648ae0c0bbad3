package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for sessions and request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to v4.
// Used for trace ids.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateSecret returns a random UUIDv4. Used where the id must not be
// guessable, such as session ids.
func (g *UUIDGenerator) GenerateSecret() string {
	return uuid.NewString()
}
