package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/storekit/svc/account"
)

// Owners implements account.OwnerRepository.
type Owners struct {
	coll    *mongo.Collection
	timeout time.Duration
}

type ownerDoc struct {
	ID            string     `bson:"_id"`
	Email         string     `bson:"email"`
	PasswordHash  string     `bson:"password_hash"`
	FullName      string     `bson:"full_name,omitempty"`
	StoreIDs      []string   `bson:"store_ids"`
	ActiveStoreID string     `bson:"active_store_id,omitempty"`
	Active        bool       `bson:"active"`
	LastLoginAt   *time.Time `bson:"last_login_at,omitempty"`
	CreatedAt     time.Time  `bson:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at"`
}

func ownerToDoc(o *account.Owner) ownerDoc {
	storeIDs := o.StoreIDs
	if storeIDs == nil {
		storeIDs = []string{}
	}
	return ownerDoc{
		ID:            o.ID,
		Email:         o.Email,
		PasswordHash:  o.PasswordHash,
		FullName:      o.FullName,
		StoreIDs:      storeIDs,
		ActiveStoreID: o.ActiveStoreID,
		Active:        o.Active,
		LastLoginAt:   o.LastLoginAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d ownerDoc) toOwner() *account.Owner {
	return &account.Owner{
		ID:            d.ID,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		FullName:      d.FullName,
		StoreIDs:      d.StoreIDs,
		ActiveStoreID: d.ActiveStoreID,
		Active:        d.Active,
		LastLoginAt:   d.LastLoginAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *Owners) FindByEmail(ctx context.Context, email string) (*account.Owner, error) {
	return r.findOne(ctx, "find owner by email", bson.D{{Key: "email", Value: email}})
}

func (r *Owners) FindByID(ctx context.Context, id string) (*account.Owner, error) {
	return r.findOne(ctx, "find owner", byID(id))
}

func (r *Owners) findOne(ctx context.Context, op string, filter bson.D) (*account.Owner, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc ownerDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, classify(op, err, account.ErrOwnerNotFound, account.ErrUnavailable)
	}
	return doc.toOwner(), nil
}

func (r *Owners) Save(ctx context.Context, owner *account.Owner) error {
	if owner == nil || owner.ID == "" {
		return account.ErrInvalidInput
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, byID(owner.ID), ownerToDoc(owner), upsert())
	if mongo.IsDuplicateKeyError(err) {
		return account.ErrEmailAlreadyExists
	}
	return classify("save owner", err, nil, account.ErrUnavailable)
}

func (r *Owners) AddStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.updateOne(ctx, "add store to owner", byID(ownerID), bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "store_ids", Value: storeID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: at}}},
	}, true); err != nil {
		return err
	}

	// Only the first store becomes active; a concurrent AddStore that lost
	// the race matches nothing here.
	return r.updateOne(ctx, "set first active store", bson.D{
		{Key: "_id", Value: ownerID},
		{Key: "active_store_id", Value: bson.D{{Key: "$exists", Value: false}}},
	}, bson.D{
		{Key: "$set", Value: bson.D{{Key: "active_store_id", Value: storeID}}},
	}, false)
}

func (r *Owners) SetActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.updateOne(ctx, "set active store", byID(ownerID), bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "store_ids", Value: storeID}}},
		{Key: "$set", Value: bson.D{
			{Key: "active_store_id", Value: storeID},
			{Key: "updated_at", Value: at},
		}},
	}, true)
}

func (r *Owners) ClearActiveStore(ctx context.Context, ownerID, storeID string, at time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.updateOne(ctx, "clear active store", bson.D{
		{Key: "_id", Value: ownerID},
		{Key: "active_store_id", Value: storeID},
	}, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "active_store_id", Value: ""}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: at}}},
	}, false)
}

func (r *Owners) RecordLogin(ctx context.Context, ownerID string, at time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.updateOne(ctx, "record login", byID(ownerID), bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "last_login_at", Value: at},
			{Key: "updated_at", Value: at},
		}},
	}, true)
}

// updateOne applies update to the document matching filter. With mustMatch
// an unmatched filter is reported as ErrOwnerNotFound.
func (r *Owners) updateOne(ctx context.Context, op string, filter, update bson.D, mustMatch bool) error {
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return classify(op, err, nil, account.ErrUnavailable)
	}
	if mustMatch && res.MatchedCount == 0 {
		return account.ErrOwnerNotFound
	}
	return nil
}
