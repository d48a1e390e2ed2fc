package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
)

// Stores implements account.StoreRepository and tenant.StoreFinder.
// Lookup timeouts surface as tenant.ErrUnavailable.
type Stores struct {
	coll    *mongo.Collection
	timeout time.Duration
}

type storeDoc struct {
	ID         string    `bson:"_id"`
	Code       string    `bson:"code"`
	Name       string    `bson:"name"`
	OwnerID    string    `bson:"owner_id"`
	OwnerEmail string    `bson:"owner_email"`
	Active     bool      `bson:"active"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func storeToDoc(s *tenant.Store) storeDoc {
	return storeDoc{
		ID:         s.ID,
		Code:       s.Code,
		Name:       s.Name,
		OwnerID:    s.OwnerID,
		OwnerEmail: s.OwnerEmail,
		Active:     s.Active,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (d storeDoc) toStore() *tenant.Store {
	return &tenant.Store{
		ID:         d.ID,
		Code:       d.Code,
		Name:       d.Name,
		OwnerID:    d.OwnerID,
		OwnerEmail: d.OwnerEmail,
		Active:     d.Active,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *Stores) FindByID(ctx context.Context, id string) (*tenant.Store, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc storeDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, classify("find store", err, tenant.ErrStoreNotFound, tenant.ErrUnavailable)
	}
	return doc.toStore(), nil
}

func (r *Stores) Save(ctx context.Context, store *tenant.Store) error {
	if store == nil || store.ID == "" {
		return account.ErrInvalidInput
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, byID(store.ID), storeToDoc(store), upsert())
	if mongo.IsDuplicateKeyError(err) {
		return account.ErrStoreCodeTaken
	}
	return classify("save store", err, nil, tenant.ErrUnavailable)
}
