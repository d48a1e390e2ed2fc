package tenant

// Scoped is implemented by every store-scoped entity.
// Implementations on pointer receivers must tolerate a nil receiver.
type Scoped interface {
	GetStoreID() string
}

// AssertBelongsToStore fails with ErrTenantMismatch unless resourceStoreID is
// exactly the store of sc. An unresolved context or an empty resource store id
// never matches.
func AssertBelongsToStore(resourceStoreID string, sc StoreContext) error {
	if !sc.Valid() || resourceStoreID == "" || resourceStoreID != sc.storeID {
		return ErrTenantMismatch
	}
	return nil
}

// Check is AssertBelongsToStore for a loaded entity. A nil entity is a mismatch.
func Check(resource Scoped, sc StoreContext) error {
	if resource == nil {
		return ErrTenantMismatch
	}
	return AssertBelongsToStore(resource.GetStoreID(), sc)
}

// Filter returns the subset of items that belong to the store of sc, and the
// number of items that were dropped.
func Filter[T Scoped](items []T, sc StoreContext) ([]T, int) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Check(item, sc) == nil {
			out = append(out, item)
		}
	}
	return out, len(items) - len(out)
}
