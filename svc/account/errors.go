package account

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email, a wrong
	// password or a deactivated owner alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrOwnerNotFound is returned by owner repositories.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrStoreCodeTaken is returned when another store already uses the code.
	ErrStoreCodeTaken = errors.New("store code already taken")

	// ErrTokenRevoked is returned when a refresh token was already used or
	// logged out, or its owner is no longer active.
	ErrTokenRevoked = errors.New("refresh token revoked")

	// ErrInvalidInput is returned when required fields are empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrUnavailable is returned when the revocation denylist cannot be reached.
	ErrUnavailable = errors.New("account storage unavailable")
)
