package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/storekit/pkg/auth"
)

// Authorizer answers whether a principal owns a store. Each decision reloads
// the store, so a change of ownership is visible on the very next call.
type Authorizer struct {
	stores StoreFinder
}

// NewAuthorizer creates an authorizer backed by the given store finder.
func NewAuthorizer(stores StoreFinder) *Authorizer {
	return &Authorizer{stores: stores}
}

// IsOwner reports whether p is the registered owner of the store.
// A missing store or a nil principal yields false without error; lookup
// failures are returned as errors.
func (a *Authorizer) IsOwner(ctx context.Context, storeID string, p *auth.Principal) (bool, error) {
	if p == nil || p.Email == "" || storeID == "" {
		return false, nil
	}

	store, err := a.stores.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return false, nil
		}
		return false, classifyLookupError(storeID, err)
	}
	if store == nil || store.OwnerEmail == "" {
		return false, nil
	}

	return strings.EqualFold(store.OwnerEmail, p.Email), nil
}

// RequireOwner gates administrative operations on the store of sc.
// It returns auth.ErrUnauthorized without a principal and auth.ErrForbidden
// when the principal is not the owner. It does not replace the isolation guard.
func (a *Authorizer) RequireOwner(ctx context.Context, sc StoreContext, p *auth.Principal) error {
	if p == nil {
		return auth.ErrUnauthorized
	}
	if !sc.Valid() {
		return ErrNoStoreContext
	}

	ok, err := a.IsOwner(ctx, sc.StoreID(), p)
	if err != nil {
		return err
	}
	if !ok {
		return auth.ErrForbidden
	}
	return nil
}
