package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/pkg/validator"
)

func storeRules(code, name string) []validator.Rule {
	return []validator.Rule{
		validator.ValidSlug("code", code),
		validator.MinLenString("code", code, minCodeLength),
		validator.MaxLenString("code", code, maxCodeLength),
		validator.RequiredString("name", name),
		validator.MaxLenString("name", name, maxNameLength),
	}
}

// CreateStoreInput holds the fields for a new store.
type CreateStoreInput struct {
	Code string
	Name string
}

// CreateStore creates a store owned by the principal, appends it to the
// owner's stores and makes it the active store if none is set.
func (s *Service) CreateStore(ctx context.Context, p *auth.Principal, in CreateStoreInput) (*tenant.Store, error) {
	owner, err := s.requireOwner(ctx, p)
	if err != nil {
		return nil, err
	}

	code := strings.ToLower(strings.TrimSpace(in.Code))
	name := strings.TrimSpace(in.Name)
	if err := validator.Apply(storeRules(code, name)...); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}

	now := s.now().UTC()
	store := &tenant.Store{
		ID:         s.newID(),
		Code:       code,
		Name:       name,
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.stores.Save(ctx, store); err != nil {
		if errors.Is(err, ErrStoreCodeTaken) {
			return nil, ErrStoreCodeTaken
		}
		return nil, fmt.Errorf("save store: %w", err)
	}

	if err := s.owners.AddStore(ctx, owner.ID, store.ID, now); err != nil {
		return nil, fmt.Errorf("add store to owner: %w", err)
	}

	s.logger.InfoContext(ctx, "store created", logger.OwnerID(owner.ID), logger.StoreID(store.ID))
	return store, nil
}

// GetStore returns the store bound to sc. Store details are public.
func (s *Service) GetStore(ctx context.Context, sc tenant.StoreContext) (*tenant.Store, error) {
	if !sc.Valid() {
		return nil, tenant.ErrNoStoreContext
	}
	store, err := s.stores.FindByID(ctx, sc.StoreID())
	if err != nil {
		return nil, err
	}
	if !store.Active {
		return nil, tenant.ErrStoreNotFound
	}
	if err := tenant.AssertBelongsToStore(store.ID, sc); err != nil {
		return nil, err
	}
	return store, nil
}

// UpdateStoreInput holds the mutable store fields. Nil fields are unchanged.
type UpdateStoreInput struct {
	Name *string
}

// UpdateStore changes store details. Only the owner may update a store.
func (s *Service) UpdateStore(ctx context.Context, p *auth.Principal, sc tenant.StoreContext, in UpdateStoreInput) (*tenant.Store, error) {
	if err := s.authorizer.RequireOwner(ctx, sc, p); err != nil {
		return nil, err
	}

	store, err := s.GetStore(ctx, sc)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validator.Apply(
			validator.RequiredString("name", name),
			validator.MaxLenString("name", name, maxNameLength),
		); err != nil {
			return nil, errors.Join(ErrInvalidInput, err)
		}
		store.Name = name
	}
	store.UpdatedAt = s.now().UTC()

	if err := s.stores.Save(ctx, store); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return store, nil
}

// DeleteStore deactivates the store. Deactivated stores resolve as not found.
// Only the owner may delete a store.
func (s *Service) DeleteStore(ctx context.Context, p *auth.Principal, sc tenant.StoreContext) error {
	if err := s.authorizer.RequireOwner(ctx, sc, p); err != nil {
		return err
	}

	store, err := s.GetStore(ctx, sc)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	store.Active = false
	store.UpdatedAt = now
	if err := s.stores.Save(ctx, store); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	if err := s.owners.ClearActiveStore(ctx, store.OwnerID, store.ID, now); err != nil {
		return fmt.Errorf("clear active store: %w", err)
	}

	s.logger.InfoContext(ctx, "store deactivated", logger.OwnerID(store.OwnerID), logger.StoreID(store.ID))
	return nil
}

// SetActiveStore points the owner's active store at sc. Only the owner of
// the store may select it.
func (s *Service) SetActiveStore(ctx context.Context, p *auth.Principal, sc tenant.StoreContext) (*Owner, error) {
	if err := s.authorizer.RequireOwner(ctx, sc, p); err != nil {
		return nil, err
	}

	owner, err := s.requireOwner(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.owners.SetActiveStore(ctx, owner.ID, sc.StoreID(), s.now().UTC()); err != nil {
		return nil, fmt.Errorf("set active store: %w", err)
	}
	return s.owners.FindByID(ctx, owner.ID)
}
