package utils

import "github.com/google/uuid"

// UUIDGenerator produces UUIDv7 strings. It satisfies the IDSource
// interfaces of the search filter and notification queue packages.
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
