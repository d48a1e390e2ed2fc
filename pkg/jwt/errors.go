package jwt

import "errors"

var (
	// ErrInvalidToken covers malformed tokens, bad signatures, wrong signing
	// method, wrong issuer and a token presented to the wrong verifier.
	ErrInvalidToken = errors.New("jwt: invalid token")
	// ErrExpiredToken is returned only for correctly signed tokens past their exp.
	ErrExpiredToken = errors.New("jwt: token is expired")

	ErrMissingSecret    = errors.New("jwt: missing signing secret")
	ErrIdenticalSecrets = errors.New("jwt: access and refresh secrets must differ")
	ErrInvalidLifetime  = errors.New("jwt: token lifetime must be positive")
	ErrMissingSubject   = errors.New("jwt: missing subject")
	ErrSigningFailed    = errors.New("jwt: failed to sign token")
)
