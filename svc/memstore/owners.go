package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/svc/account"
)

// Owners is an in-memory account.OwnerRepository.
type Owners struct {
	mu      sync.RWMutex
	byID    map[string]*account.Owner
	byEmail map[string]string
}

// NewOwners creates an empty owner repository.
func NewOwners() *Owners {
	return &Owners{
		byID:    make(map[string]*account.Owner),
		byEmail: make(map[string]string),
	}
}

func (r *Owners) FindByEmail(ctx context.Context, email string) (*account.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(account.ErrUnavailable, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[account.NormalizeEmail(email)]
	if !ok {
		return nil, account.ErrOwnerNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *Owners) FindByID(ctx context.Context, id string) (*account.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(account.ErrUnavailable, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, account.ErrOwnerNotFound
	}
	return o.Clone(), nil
}

func (r *Owners) Save(ctx context.Context, owner *account.Owner) error {
	if err := ctx.Err(); err != nil {
		return unavailable(account.ErrUnavailable, err)
	}
	if owner == nil || owner.ID == "" {
		return account.ErrInvalidInput
	}
	email := account.NormalizeEmail(owner.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byEmail[email]; ok && id != owner.ID {
		return account.ErrEmailAlreadyExists
	}
	if prev, ok := r.byID[owner.ID]; ok {
		delete(r.byEmail, account.NormalizeEmail(prev.Email))
	}
	c := owner.Clone()
	c.Email = email
	r.byID[owner.ID] = c
	r.byEmail[email] = owner.ID
	return nil
}

func (r *Owners) AddStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	return r.update(ctx, ownerID, at, func(o *account.Owner) {
		if !o.OwnsStore(storeID) {
			o.StoreIDs = append(o.StoreIDs, storeID)
		}
		if o.ActiveStoreID == "" {
			o.ActiveStoreID = storeID
		}
	})
}

func (r *Owners) SetActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	return r.update(ctx, ownerID, at, func(o *account.Owner) {
		if !o.OwnsStore(storeID) {
			o.StoreIDs = append(o.StoreIDs, storeID)
		}
		o.ActiveStoreID = storeID
	})
}

func (r *Owners) ClearActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	err := r.update(ctx, ownerID, at, func(o *account.Owner) {
		if o.ActiveStoreID == storeID {
			o.ActiveStoreID = ""
		}
	})
	if errors.Is(err, account.ErrOwnerNotFound) {
		return nil
	}
	return err
}

func (r *Owners) RecordLogin(ctx context.Context, ownerID string, at time.Time) error {
	return r.update(ctx, ownerID, at, func(o *account.Owner) {
		t := at
		o.LastLoginAt = &t
	})
}

// update applies fn to the stored owner in place under the write lock.
func (r *Owners) update(ctx context.Context, ownerID string, at time.Time, fn func(*account.Owner)) error {
	if err := ctx.Err(); err != nil {
		return unavailable(account.ErrUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[ownerID]
	if !ok {
		return account.ErrOwnerNotFound
	}
	fn(o)
	o.UpdatedAt = at
	return nil
}
