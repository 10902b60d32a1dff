// Package common defines shared constants, helpers and sentinel errors used
// across credkeeper components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("user not found")
	ErrorAlreadyExists = errors.New("user already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorAlreadyInUse       = errors.New("biometric key already used")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")
	ErrorWeakPassword = errors.New("password is not strong enough")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// InternalError is returned when a hashing, signing or storage primitive
// fails. Its message is always the generic ErrorInternal text; the underlying
// cause is kept for server-side logging only.
type InternalError struct {
	Op    string
	Cause error
}

func (e *InternalError) Error() string { return ErrorInternal.Error() }

func (e *InternalError) Unwrap() error { return ErrorInternal }

// Internal wraps cause into an *InternalError for operation op.
func Internal(op string, cause error) error {
	return &InternalError{Op: op, Cause: cause}
}

// InternalCause extracts the operation and cause of an internal fault, if err
// carries one.
func InternalCause(err error) (string, error, bool) {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.Op, ie.Cause, true
	}
	return "", nil, false
}
