package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

func TestAssertBelongsToStore(t *testing.T) {
	t.Parallel()

	s1 := newStore("a@x.com")
	s2 := newStore("b@y.com")
	resolver := tenant.NewResolver(newMockStores(s1, s2))

	sc1, err := resolver.Resolve(context.Background(), s1.ID)
	require.NoError(t, err)
	sc2, err := resolver.Resolve(context.Background(), s2.ID)
	require.NoError(t, err)

	assert.NoError(t, tenant.AssertBelongsToStore(s1.ID, sc1))
	assert.ErrorIs(t, tenant.AssertBelongsToStore(s1.ID, sc2), tenant.ErrTenantMismatch)
	assert.ErrorIs(t, tenant.AssertBelongsToStore(s2.ID, sc1), tenant.ErrTenantMismatch)
	assert.ErrorIs(t, tenant.AssertBelongsToStore("", sc1), tenant.ErrTenantMismatch)

	t.Run("zero context matches nothing", func(t *testing.T) {
		var zero tenant.StoreContext
		assert.ErrorIs(t, tenant.AssertBelongsToStore(s1.ID, zero), tenant.ErrTenantMismatch)
		assert.ErrorIs(t, tenant.AssertBelongsToStore("", zero), tenant.ErrTenantMismatch)
	})
}

func TestCheckAndFilter(t *testing.T) {
	t.Parallel()

	s1 := newStore("a@x.com")
	s2 := newStore("b@y.com")
	sc1, err := tenant.NewResolver(newMockStores(s1, s2)).Resolve(context.Background(), s1.ID)
	require.NoError(t, err)

	own := &item{ID: "1", StoreID: s1.ID}
	foreign := &item{ID: "2", StoreID: s2.ID}

	assert.NoError(t, tenant.Check(own, sc1))
	assert.ErrorIs(t, tenant.Check(foreign, sc1), tenant.ErrTenantMismatch)
	assert.ErrorIs(t, tenant.Check(nil, sc1), tenant.ErrTenantMismatch)

	var nilItem *item
	assert.ErrorIs(t, tenant.Check(nilItem, sc1), tenant.ErrTenantMismatch)

	kept, dropped := tenant.Filter([]*item{own, foreign, nilItem, {ID: "3", StoreID: s1.ID}}, sc1)
	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 2)
	for _, k := range kept {
		assert.Equal(t, s1.ID, k.StoreID)
	}
}
