package account

import (
	"context"
	"time"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

// OwnerRepository persists owners.
type OwnerRepository interface {
	// FindByEmail looks up an owner by normalized email.
	// Returns ErrOwnerNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Owner, error)
	// FindByID returns ErrOwnerNotFound when absent.
	FindByID(ctx context.Context, id string) (*Owner, error)
	// Save inserts or replaces the owner by id.
	// Returns ErrEmailAlreadyExists when another owner has the same email.
	Save(ctx context.Context, owner *Owner) error

	// The updates below touch only the named fields, so concurrent calls for
	// one owner never drop each other's changes. Each returns
	// ErrOwnerNotFound when the owner is absent, except ClearActiveStore.

	// AddStore appends storeID to the owner's stores unless present and
	// makes it the active store when none is set.
	AddStore(ctx context.Context, ownerID, storeID string, at time.Time) error
	// SetActiveStore makes storeID the active store, adding it to the
	// owner's stores if missing.
	SetActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error
	// ClearActiveStore unsets the active store only while it equals storeID.
	ClearActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error
	// RecordLogin sets the last login time.
	RecordLogin(ctx context.Context, ownerID string, at time.Time) error
}

// StoreRepository persists stores.
type StoreRepository interface {
	tenant.StoreFinder
	// Save inserts or replaces the store by id.
	// Returns ErrStoreCodeTaken when another store has the same code.
	Save(ctx context.Context, store *tenant.Store) error
}

// Denylist records refresh token ids that must no longer be accepted.
// It is consulted on refresh and logout only, never on access verification.
type Denylist interface {
	// Revoke stores jti until expiresAt. It reports false when jti was
	// already revoked, which makes refresh rotation single-use.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error)
	// IsRevoked reports whether jti was revoked and has not yet expired.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
