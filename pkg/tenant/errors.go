package tenant

import "errors"

var (
	// ErrStoreNotFound is returned when a store does not exist or is inactive.
	ErrStoreNotFound = errors.New("store not found")

	// ErrInvalidStoreID is returned when a store identifier is malformed.
	ErrInvalidStoreID = errors.New("invalid store identifier")

	// ErrTenantMismatch is returned when a resource belongs to a store other
	// than the one the operation is scoped to.
	ErrTenantMismatch = errors.New("resource does not belong to store")

	// ErrNoStoreContext is returned when no store context is present in the request.
	ErrNoStoreContext = errors.New("no store context")

	// ErrUnavailable is returned when the store lookup timed out, was
	// cancelled or the backing storage is unreachable. Callers may retry.
	ErrUnavailable = errors.New("store lookup unavailable")
)
