package secrets

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only ever reads the first 72 bytes of its input.
const maxBcryptInput = 72

// Bcrypt is the legacy driver. Records written by the previous service are
// plain bcrypt strings and verify here unchanged.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	return &Bcrypt{cost: cost}, nil
}

func (b *Bcrypt) Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(truncateBcrypt(secret), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (b *Bcrypt) Owns(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}

func (b *Bcrypt) Verify(secret, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), truncateBcrypt(secret)) == nil
}

// truncateBcrypt mirrors the silent 72-byte truncation of the legacy
// implementation so long secrets hash and verify consistently.
func truncateBcrypt(secret string) []byte {
	b := []byte(secret)
	if len(b) > maxBcryptInput {
		b = b[:maxBcryptInput]
	}
	return b
}
