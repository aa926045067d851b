package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for uploads that arrive without
// one. Version 7 UUIDs keep the listing roughly time-ordered.
type UUIDGenerator struct {
}

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
