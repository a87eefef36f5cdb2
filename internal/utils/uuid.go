package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered identifiers. Lexicographic order of
// the returned strings follows creation order, which the safety backup
// store relies on for eviction.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to v4 if the clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
