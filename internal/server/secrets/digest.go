package secrets

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

const minDigestKeyLen = 16

// Digester derives a deterministic keyed digest (HMAC-SHA256) of a secret.
// Unlike salted hashes, digests can be compared for equality, which lets the
// store index biometric keys and enforce uniqueness. The salted hash remains
// the final verification step.
type Digester struct {
	key []byte
}

func NewDigester(key []byte) (*Digester, error) {
	if len(key) < minDigestKeyLen {
		return nil, fmt.Errorf("digest key must be at least %d bytes", minDigestKeyLen)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Digester{key: k}, nil
}

func (d *Digester) Digest(secret string) []byte {
	mac := hmac.New(sha256.New, d.key)
	mac.Write([]byte(secret))
	return mac.Sum(nil)
}

// EqualDigest compares two digests in constant time.
func EqualDigest(a, b []byte) bool {
	return hmac.Equal(a, b)
}
