package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Resolver establishes a StoreContext for a store id referenced by a request.
// Every call goes to storage; nothing is cached between calls.
type Resolver struct {
	stores     StoreFinder
	validateID func(string) error
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithIDValidator replaces the default UUID format check for store ids.
func WithIDValidator(fn func(string) error) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.validateID = fn
		}
	}
}

// NewResolver creates a resolver backed by the given store finder.
func NewResolver(stores StoreFinder, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		stores:     stores,
		validateID: uuid.Validate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the store and returns a context scoped to it.
// Inactive stores are reported as ErrStoreNotFound. Deadline and cancellation
// errors are reported as ErrUnavailable, never as ErrStoreNotFound.
func (r *Resolver) Resolve(ctx context.Context, storeID string) (StoreContext, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return StoreContext{}, ErrInvalidStoreID
	}
	if err := r.validateID(storeID); err != nil {
		return StoreContext{}, ErrInvalidStoreID
	}
	if err := ctx.Err(); err != nil {
		return StoreContext{}, errors.Join(ErrUnavailable, err)
	}

	store, err := r.stores.FindByID(ctx, storeID)
	if err != nil {
		return StoreContext{}, classifyLookupError(storeID, err)
	}
	if store == nil || store.ID != storeID || !store.Active {
		return StoreContext{}, ErrStoreNotFound
	}

	return StoreContext{storeID: store.ID}, nil
}

func classifyLookupError(storeID string, err error) error {
	switch {
	case errors.Is(err, ErrStoreNotFound):
		return ErrStoreNotFound
	case errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errors.Join(ErrUnavailable, err)
	default:
		return fmt.Errorf("resolve store %s: %w", storeID, err)
	}
}
