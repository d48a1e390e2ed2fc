package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
)

// Stores is an in-memory account.StoreRepository and tenant.StoreFinder.
type Stores struct {
	mu     sync.RWMutex
	byID   map[string]tenant.Store
	byCode map[string]string
	delay  time.Duration
}

// StoresOption configures Stores.
type StoresOption func(*Stores)

// WithLookupDelay makes every FindByID wait d or until ctx is done. Used to
// exercise deadline handling.
func WithLookupDelay(d time.Duration) StoresOption {
	return func(s *Stores) { s.delay = d }
}

// NewStores creates an empty store repository.
func NewStores(opts ...StoresOption) *Stores {
	s := &Stores{
		byID:   make(map[string]tenant.Store),
		byCode: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (r *Stores) FindByID(ctx context.Context, id string) (*tenant.Store, error) {
	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, unavailable(tenant.ErrUnavailable, ctx.Err())
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable(tenant.ErrUnavailable, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, tenant.ErrStoreNotFound
	}
	return &s, nil
}

func (r *Stores) Save(ctx context.Context, store *tenant.Store) error {
	if err := ctx.Err(); err != nil {
		return unavailable(tenant.ErrUnavailable, err)
	}
	if store == nil || store.ID == "" {
		return account.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byCode[store.Code]; ok && id != store.ID {
		return account.ErrStoreCodeTaken
	}
	if prev, ok := r.byID[store.ID]; ok {
		delete(r.byCode, prev.Code)
	}
	r.byID[store.ID] = *store
	r.byCode[store.Code] = store.ID
	return nil
}
