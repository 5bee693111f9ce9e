package utils

import "github.com/google/uuid"

// TokenGenerator produces opaque session tokens. Tokens are UUIDv7 so that
// they sort roughly by creation time; when v7 generation fails (entropy
// exhaustion) it falls back to a random v4.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
