package tenant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/tenant"
)

func TestAuthorizer_IsOwner(t *testing.T) {
	t.Parallel()

	s := newStore("a@x.com")
	stores := newMockStores(s)
	authz := tenant.NewAuthorizer(stores)
	ctx := context.Background()

	alice := &auth.Principal{Email: "a@x.com"}
	bob := &auth.Principal{Email: "b@y.com"}

	ok, err := authz.IsOwner(ctx, s.ID, alice)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = authz.IsOwner(ctx, s.ID, &auth.Principal{Email: "A@X.com"})
	require.NoError(t, err)
	assert.True(t, ok, "email comparison is case-insensitive")

	ok, err = authz.IsOwner(ctx, s.ID, bob)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = authz.IsOwner(ctx, s.ID, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = authz.IsOwner(ctx, uuid.NewString(), alice)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("ownership change is visible on the next call", func(t *testing.T) {
		m := newMockStores(s)
		a := tenant.NewAuthorizer(m)

		ok, err := a.IsOwner(ctx, s.ID, alice)
		require.NoError(t, err)
		require.True(t, ok)

		m.setOwnerEmail(s.ID, bob.Email)

		ok, err = a.IsOwner(ctx, s.ID, alice)
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = a.IsOwner(ctx, s.ID, bob)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(3), m.calls.Load())
	})

	t.Run("lookup failure is an error", func(t *testing.T) {
		m := newMockStores(s)
		m.err = context.DeadlineExceeded
		_, err := tenant.NewAuthorizer(m).IsOwner(ctx, s.ID, alice)
		require.ErrorIs(t, err, tenant.ErrUnavailable)
	})
}

func TestAuthorizer_RequireOwner(t *testing.T) {
	t.Parallel()

	s := newStore("a@x.com")
	stores := newMockStores(s)
	authz := tenant.NewAuthorizer(stores)
	ctx := context.Background()

	sc, err := tenant.NewResolver(stores).Resolve(ctx, s.ID)
	require.NoError(t, err)

	require.NoError(t, authz.RequireOwner(ctx, sc, &auth.Principal{Email: "a@x.com"}))
	require.ErrorIs(t, authz.RequireOwner(ctx, sc, &auth.Principal{Email: "b@y.com"}), auth.ErrForbidden)
	require.ErrorIs(t, authz.RequireOwner(ctx, sc, nil), auth.ErrUnauthorized)
	require.ErrorIs(t, authz.RequireOwner(ctx, tenant.StoreContext{}, &auth.Principal{Email: "a@x.com"}), tenant.ErrNoStoreContext)

	m := newMockStores(s)
	m.err = errors.New("boom")
	err = tenant.NewAuthorizer(m).RequireOwner(ctx, sc, &auth.Principal{Email: "a@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrForbidden)
}
