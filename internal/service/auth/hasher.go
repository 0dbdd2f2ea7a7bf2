// Package auth provides password hashing, token issuing and credential
// verification for the API.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and verifies salted one-way password digests with bcrypt.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of the plain text password. The salt is
// generated per call and embedded in the digest.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("Hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed or empty
// digest counts as a mismatch, never an error.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
