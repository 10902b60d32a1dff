// Package services contains the authentication core: password validation,
// biometric matching and rotation, registration and token issuance.
package services

import (
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// SecretHasher hashes and verifies secrets.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hashed string) bool
}

// Digester derives the deterministic biometric index digest.
type Digester interface {
	Digest(secret string) []byte
}

// TokenIssuer signs session tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(id models.Identity) (string, error)
}
