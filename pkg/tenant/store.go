package tenant

import (
	"context"
	"time"
)

// Store is the tenant-owned resource root. OwnerID and OwnerEmail are set at
// creation and never change.
type Store struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	OwnerID    string    `json:"owner_id"`
	OwnerEmail string    `json:"owner_email"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StoreFinder loads stores from persistent storage.
type StoreFinder interface {
	// FindByID returns ErrStoreNotFound when no store has the given id.
	FindByID(ctx context.Context, id string) (*Store, error)
}
