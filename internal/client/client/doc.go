// Package client contains the client side of the credkeeper AuthService.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, LoginWithBiometric and UpdateBiometric.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the bearer token obtained at login via an
//     interceptor, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrAlreadyExists
// and ErrInvalidArgument.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
