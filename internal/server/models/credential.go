// Package models holds the server-side data types shared by repositories,
// services and the transport layer.
package models

import "time"

// CredentialRecord is the stored representation of a user. Empty PasswordHash
// or BiometricHash means the corresponding secret is not set.
type CredentialRecord struct {
	ID              string
	Email           string
	PasswordHash    string
	BiometricHash   string
	BiometricDigest []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether password authentication is configured.
func (r *CredentialRecord) HasPassword() bool { return r.PasswordHash != "" }

// HasBiometric reports whether a biometric secret is configured.
func (r *CredentialRecord) HasBiometric() bool { return r.BiometricHash != "" }

// Identity returns the secret-free view of the record.
func (r *CredentialRecord) Identity() *Identity {
	return &Identity{
		ID:        r.ID,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Identity is an authenticated principal. It never carries secrets.
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialUpdate lists the fields a store update may set.
type CredentialUpdate struct {
	BiometricHash   string
	BiometricDigest []byte
}
