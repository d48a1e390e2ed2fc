package auth

import "errors"

var (
	// ErrUnauthorized means an operation required a principal and none was attached.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means a principal was present but lacks the required relationship.
	ErrForbidden = errors.New("forbidden")
)
