package api

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the session token
	// or the supplied credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when the addressed task does not exist for the
	// current user.
	ErrNotFound = errors.New("not found")
)
