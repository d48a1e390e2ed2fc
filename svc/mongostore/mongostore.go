package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names.
const (
	OwnersCollection   = "owners"
	StoresCollection   = "stores"
	ProductsCollection = "products"
)

// Repositories bundles the repositories sharing one database handle.
type Repositories struct {
	Owners   *Owners
	Stores   *Stores
	Products *Products

	db *mongo.Database
}

// Option configures the repositories.
type Option func(*settings)

type settings struct {
	timeout time.Duration
}

// WithQueryTimeout bounds every repository call. Zero disables the bound and
// leaves deadlines to the caller context.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// New creates the repositories over db.
func New(db *mongo.Database, opts ...Option) *Repositories {
	s := settings{timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&s)
	}
	return &Repositories{
		Owners:   &Owners{coll: db.Collection(OwnersCollection), timeout: s.timeout},
		Stores:   &Stores{coll: db.Collection(StoresCollection), timeout: s.timeout},
		Products: &Products{coll: db.Collection(ProductsCollection), timeout: s.timeout},
		db:       db,
	}
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		OwnersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		StoresCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_code")},
			{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: options.Index().SetName("owner_id")},
		},
		ProductsCollection: {
			{Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("store_created")},
		},
	}
	for name, models := range indexes {
		if _, err := r.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return classify("create indexes on "+name, err, nil, nil)
		}
	}
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func upsert() options.Lister[options.ReplaceOptions] {
	return options.Replace().SetUpsert(true)
}
