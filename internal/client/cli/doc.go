// Package cli implements credctl, the operator command-line tool for
// credkeeper.
//
// Commands:
//   - hash: prints the salted hash of a secret read without echo
//   - register: creates an account directly in PostgreSQL (migrations first)
//   - login: password login over gRPC, prints the token
//   - biometric-login: biometric key login over gRPC, prints the token
//   - set-biometric: password login, then rotates the account's biometric key
//
// Secrets are read from the terminal without echo, or line by line when
// stdin is piped.
package cli
