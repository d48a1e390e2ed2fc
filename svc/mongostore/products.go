package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/catalog"
)

// Products implements catalog.ProductRepository.
type Products struct {
	coll    *mongo.Collection
	timeout time.Duration
}

type productDoc struct {
	ID          string    `bson:"_id"`
	StoreID     string    `bson:"store_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	PriceCents  int64     `bson:"price_cents"`
	Currency    string    `bson:"currency"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func productToDoc(p *catalog.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDoc) toProduct() *catalog.Product {
	return &catalog.Product{
		ID:          d.ID,
		StoreID:     d.StoreID,
		Name:        d.Name,
		Description: d.Description,
		PriceCents:  d.PriceCents,
		Currency:    d.Currency,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *Products) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc productDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, classify("find product", err, catalog.ErrProductNotFound, tenant.ErrUnavailable)
	}
	return doc.toProduct(), nil
}

// ListByStore returns the store's products, newest first.
func (r *Products) ListByStore(ctx context.Context, storeID string) ([]*catalog.Product, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{{Key: "store_id", Value: storeID}}, opts)
	if err != nil {
		return nil, classify("list products", err, nil, tenant.ErrUnavailable)
	}

	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, classify("decode products", err, nil, tenant.ErrUnavailable)
	}

	out := make([]*catalog.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toProduct())
	}
	return out, nil
}

func (r *Products) Save(ctx context.Context, p *catalog.Product) error {
	if p == nil || p.ID == "" {
		return catalog.ErrInvalidProduct
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, byID(p.ID), productToDoc(p), upsert())
	return classify("save product", err, nil, tenant.ErrUnavailable)
}

func (r *Products) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return classify("delete product", err, nil, tenant.ErrUnavailable)
	}
	if res.DeletedCount == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}
