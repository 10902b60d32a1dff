package secrets

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Algorithm names a hashing driver.
type Algorithm string

const (
	AlgorithmArgon2id Algorithm = "argon2id"
	AlgorithmBcrypt   Algorithm = "bcrypt"
)

// ParseAlgorithm accepts the driver name case-insensitively. Empty means
// argon2id.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AlgorithmArgon2id:
		return AlgorithmArgon2id, nil
	case AlgorithmBcrypt:
		return AlgorithmBcrypt, nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", s)
	}
}

// Driver is a single hashing scheme.
type Driver interface {
	Hash(secret string) (string, error)
	Verify(secret, encoded string) bool
	// Owns reports whether encoded looks like a hash produced by this driver.
	Owns(encoded string) bool
}

// Params configures a Hasher. Zero values select driver defaults.
//
// Both drivers are always built: the primary one hashes, and either one
// verifies hashes it recognizes. The argon2id values also bound the
// parameters accepted from stored hashes.
type Params struct {
	Algorithm         Algorithm
	BcryptCost        int
	Argon2Iterations  uint32
	Argon2MemoryKiB   uint32
	Argon2Parallelism uint8
}

// Hasher hashes with a primary driver and verifies with any known driver.
// It is safe for concurrent use.
type Hasher struct {
	primary Driver
	drivers []Driver
}

// NewHasher validates p and builds a Hasher. Invalid parameters are reported
// here so that misconfiguration fails at startup.
func NewHasher(p Params) (*Hasher, error) {
	algo, err := ParseAlgorithm(string(p.Algorithm))
	if err != nil {
		return nil, err
	}

	a2params := DefaultArgon2Params()
	if p.Argon2Iterations > 0 {
		a2params.Iterations = p.Argon2Iterations
	}
	if p.Argon2MemoryKiB > 0 {
		a2params.MemoryKiB = p.Argon2MemoryKiB
	}
	if p.Argon2Parallelism > 0 {
		a2params.Parallelism = p.Argon2Parallelism
	}

	bcryptCost := bcrypt.DefaultCost
	if p.BcryptCost != 0 {
		bcryptCost = p.BcryptCost
	}

	a2, err := NewArgon2(a2params)
	if err != nil {
		return nil, err
	}
	bc, err := NewBcrypt(bcryptCost)
	if err != nil {
		return nil, err
	}

	h := &Hasher{drivers: []Driver{a2, bc}}
	if algo == AlgorithmBcrypt {
		h.primary = bc
	} else {
		h.primary = a2
	}
	return h, nil
}

// Hash returns a salted one-way digest of secret. Two calls with the same
// input produce different outputs.
func (h *Hasher) Hash(secret string) (string, error) {
	return h.primary.Hash(secret)
}

// Verify reports whether secret matches encoded.
func (h *Hasher) Verify(secret, encoded string) bool {
	for _, d := range h.drivers {
		if d.Owns(encoded) {
			return d.Verify(secret, encoded)
		}
	}
	return false
}
