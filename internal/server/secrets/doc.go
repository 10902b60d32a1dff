// Package secrets implements one-way hashing and verification of user
// secrets (passwords and biometric keys).
//
// Two drivers are available:
//
//	$argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt>$<key>   (default)
//	$2a$<cost>$<salt+hash>                                            (bcrypt)
//
// A Hasher always hashes with its primary driver but verifies any hash it
// recognizes by prefix, so stored records keep working after the primary
// driver changes.
//
// Verification never returns an error: malformed, unknown or out-of-bounds
// hashes simply do not match.
//
// This package does not store secrets and must never log them.
package secrets
