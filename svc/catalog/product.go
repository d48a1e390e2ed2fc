package catalog

import (
	"context"
	"time"
)

// Product is a store-scoped catalog entry.
type Product struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetStoreID implements tenant.Scoped. It is safe on a nil receiver.
func (p *Product) GetStoreID() string {
	if p == nil {
		return ""
	}
	return p.StoreID
}

// ProductRepository persists products.
type ProductRepository interface {
	// FindByID returns ErrProductNotFound when absent. It does not filter by
	// store; callers must apply the isolation guard.
	FindByID(ctx context.Context, id string) (*Product, error)
	// ListByStore returns the products of one store, newest first.
	ListByStore(ctx context.Context, storeID string) ([]*Product, error)
	Save(ctx context.Context, p *Product) error
	// Delete returns ErrProductNotFound when absent.
	Delete(ctx context.Context, id string) error
}
