package tenant_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

// mockStores is a concurrency-safe StoreFinder that counts lookups.
type mockStores struct {
	mu     sync.RWMutex
	stores map[string]tenant.Store
	delay  time.Duration
	err    error
	calls  atomic.Int64
}

func newMockStores(stores ...tenant.Store) *mockStores {
	m := &mockStores{stores: make(map[string]tenant.Store)}
	for _, s := range stores {
		m.stores[s.ID] = s
	}
	return m
}

func (m *mockStores) FindByID(ctx context.Context, id string) (*tenant.Store, error) {
	m.calls.Add(1)

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stores[id]
	if !ok {
		return nil, tenant.ErrStoreNotFound
	}
	return &s, nil
}

func (m *mockStores) setOwnerEmail(id, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stores[id]
	s.OwnerEmail = email
	m.stores[id] = s
}

func newStore(ownerEmail string) tenant.Store {
	return tenant.Store{
		ID:         uuid.NewString(),
		Code:       "store-" + uuid.NewString()[:8],
		OwnerID:    uuid.NewString(),
		OwnerEmail: ownerEmail,
		Active:     true,
		CreatedAt:  time.Now(),
	}
}

// item is a minimal store-scoped resource.
type item struct {
	ID      string
	StoreID string
}

func (i *item) GetStoreID() string {
	if i == nil {
		return ""
	}
	return i.StoreID
}

func contextWithTimeout(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), d)
}
