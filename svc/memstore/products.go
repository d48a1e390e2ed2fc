package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/catalog"
)

// Products is an in-memory catalog.ProductRepository.
type Products struct {
	mu   sync.RWMutex
	byID map[string]catalog.Product
}

// NewProducts creates an empty product repository.
func NewProducts() *Products {
	return &Products{byID: make(map[string]catalog.Product)}
}

func (r *Products) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(tenant.ErrUnavailable, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

func (r *Products) ListByStore(ctx context.Context, storeID string) ([]*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(tenant.ErrUnavailable, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*catalog.Product, 0)
	for _, p := range r.byID {
		if p.StoreID == storeID {
			out = append(out, &p)
		}
	}
	slices.SortFunc(out, func(a, b *catalog.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *Products) Save(ctx context.Context, p *catalog.Product) error {
	if err := ctx.Err(); err != nil {
		return unavailable(tenant.ErrUnavailable, err)
	}
	if p == nil || p.ID == "" {
		return catalog.ErrInvalidProduct
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = *p
	return nil
}

func (r *Products) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return unavailable(tenant.ErrUnavailable, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return catalog.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}
