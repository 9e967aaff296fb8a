// Package common defines shared sentinel errors used across the client and
// server layers of TaskKeeper. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors. ErrInvalidToken deliberately covers malformed, tampered
	// and expired tokens alike so that callers cannot tell the causes apart.
	ErrInvalidToken         = errors.New("invalid token")
	ErrorInvalidCredentials = errors.New("invalid email or password")
)
