package secrets

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix = "$argon2id$"

	minArgon2MemoryKiB uint32 = 8 * 1024
	maxArgon2MemoryKiB uint32 = 1024 * 1024
	maxArgon2Iter      uint32 = 32
	maxArgon2Lanes     uint32 = 64
	minArgon2SaltLen   uint32 = 16
	minArgon2KeyLen    uint32 = 16
	maxArgon2SaltLen   uint32 = 64
	maxArgon2KeyLen    uint32 = 128
)

// ErrInvalidHash is returned by decoding helpers for malformed hashes.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// randReader is swapped in tests to simulate entropy failures.
var randReader io.Reader = rand.Reader

// Argon2Params are the argon2id tuning knobs.
type Argon2Params struct {
	Iterations  uint32
	MemoryKiB   uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the OWASP baseline: 64 MiB, 3 passes, 2 lanes.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Iterations:  3,
		MemoryKiB:   64 * 1024,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2 is the argon2id driver.
type Argon2 struct {
	params Argon2Params
}

func NewArgon2(p Argon2Params) (*Argon2, error) {
	switch {
	case p.Iterations < 1 || p.Iterations > maxArgon2Iter:
		return nil, fmt.Errorf("argon2id iterations must be in [1, %d]", maxArgon2Iter)
	case p.MemoryKiB < minArgon2MemoryKiB || p.MemoryKiB > maxArgon2MemoryKiB:
		return nil, fmt.Errorf("argon2id memory must be in [%d, %d] KiB", minArgon2MemoryKiB, maxArgon2MemoryKiB)
	case p.Parallelism < 1 || uint32(p.Parallelism) > maxArgon2Lanes:
		return nil, fmt.Errorf("argon2id parallelism must be in [1, %d]", maxArgon2Lanes)
	case p.SaltLength < minArgon2SaltLen || p.SaltLength > maxArgon2SaltLen:
		return nil, fmt.Errorf("argon2id salt length must be in [%d, %d]", minArgon2SaltLen, maxArgon2SaltLen)
	case p.KeyLength < minArgon2KeyLen || p.KeyLength > maxArgon2KeyLen:
		return nil, fmt.Errorf("argon2id key length must be in [%d, %d]", minArgon2KeyLen, maxArgon2KeyLen)
	}
	return &Argon2{params: p}, nil
}

func (a *Argon2) Hash(secret string) (string, error) {
	salt := make([]byte, a.params.SaltLength)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt,
		a.params.Iterations, a.params.MemoryKiB, a.params.Parallelism, a.params.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.params.MemoryKiB, a.params.Iterations, a.params.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

func (a *Argon2) Owns(encoded string) bool {
	return strings.HasPrefix(encoded, argon2Prefix)
}

func (a *Argon2) Verify(secret, encoded string) bool {
	params, salt, expected, err := decodeArgon2(encoded)
	if err != nil {
		return false
	}
	// Stored hashes keep their own parameters across config changes in
	// either direction; only values no valid config can produce are refused.
	if !withinBounds(params) {
		return false
	}

	key := argon2.IDKey([]byte(secret), salt,
		params.Iterations, params.MemoryKiB, params.Parallelism, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func withinBounds(p Argon2Params) bool {
	return p.MemoryKiB <= maxArgon2MemoryKiB &&
		p.Iterations <= maxArgon2Iter &&
		uint32(p.Parallelism) <= maxArgon2Lanes
}

// decodeArgon2 parses $argon2id$v=19$m=..,t=..,p=..$<salt>$<key>.
func decodeArgon2(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	var mem, iter, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}
	if mem == 0 || iter == 0 || par == 0 || par > 255 {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || uint32(len(salt)) > maxArgon2SaltLen {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || uint32(len(key)) < minArgon2KeyLen || uint32(len(key)) > maxArgon2KeyLen {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	return Argon2Params{
		Iterations:  iter,
		MemoryKiB:   mem,
		Parallelism: uint8(par),
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}, salt, key, nil
}
