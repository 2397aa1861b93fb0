package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for records that are not keyed by the
// database, such as Redis-held handshakes.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 strings, falling back to a
// random UUIDv4 when the clock source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
