package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/pkg/validator"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// IsolationObserver is notified when a product is withheld by the isolation
// guard. Implemented by *metrics.Metrics.
type IsolationObserver interface {
	ObserveIsolation(reason string)
}

// Service serves store-scoped products. Every call takes the StoreContext it
// is scoped to; the service itself holds no current-store state.
type Service struct {
	products   ProductRepository
	authorizer *tenant.Authorizer
	observer   IsolationObserver
	logger     *slog.Logger
	now        func() time.Time
	newID      func() string
}

// Option configures a Service.
type Option func(*Service)

func WithObserver(o IsolationObserver) Option {
	return func(s *Service) { s.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService creates the catalog service. The authorizer gates writes.
func NewService(products ProductRepository, authorizer *tenant.Authorizer, opts ...Option) *Service {
	s := &Service{
		products:   products,
		authorizer: authorizer,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("catalog"))
	return s
}

// Get returns a product of the store bound to sc. A product of another store
// fails with tenant.ErrTenantMismatch.
func (s *Service) Get(ctx context.Context, sc tenant.StoreContext, productID string) (*Product, error) {
	if !sc.Valid() {
		return nil, tenant.ErrNoStoreContext
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	if err := s.guard(ctx, p, sc); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the products of the store bound to sc. Items the repository
// returns for another store are dropped and reported.
func (s *Service) List(ctx context.Context, sc tenant.StoreContext) ([]*Product, error) {
	if !sc.Valid() {
		return nil, tenant.ErrNoStoreContext
	}

	items, err := s.products.ListByStore(ctx, sc.StoreID())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	kept, dropped := tenant.Filter(items, sc)
	if dropped > 0 {
		s.logger.WarnContext(ctx, "foreign products dropped from listing",
			logger.StoreID(sc.StoreID()),
			slog.Int("dropped", dropped),
		)
		s.observe("mismatch")
	}
	return kept, nil
}

// CreateProductInput holds the fields for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Currency    string
}

// Create adds a product to the store bound to sc. Only the store owner may
// create products.
func (s *Service) Create(ctx context.Context, p *auth.Principal, sc tenant.StoreContext, in CreateProductInput) (*Product, error) {
	if err := s.authorizer.RequireOwner(ctx, sc, p); err != nil {
		s.observeAuthz(err)
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}
	description := strings.TrimSpace(in.Description)
	if err := validator.Apply(
		validator.RequiredString("name", name),
		validator.MaxLenString("name", name, maxNameLength),
		validator.MaxLenString("description", description, maxDescriptionLength),
		validator.NonNegativeAmount("price_cents", in.PriceCents),
		validator.ValidCurrencyCode("currency", currency),
	); err != nil {
		return nil, errors.Join(ErrInvalidProduct, err)
	}

	now := s.now().UTC()
	product := &Product{
		ID:          s.newID(),
		StoreID:     sc.StoreID(),
		Name:        name,
		Description: description,
		PriceCents:  in.PriceCents,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.guard(ctx, product, sc); err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return product, nil
}

// Delete removes a product of the store bound to sc. The isolation guard runs
// before anything is removed. Only the store owner may delete products.
func (s *Service) Delete(ctx context.Context, p *auth.Principal, sc tenant.StoreContext, productID string) error {
	if err := s.authorizer.RequireOwner(ctx, sc, p); err != nil {
		s.observeAuthz(err)
		return err
	}

	product, err := s.Get(ctx, sc, productID)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product.ID); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *Service) guard(ctx context.Context, p *Product, sc tenant.StoreContext) error {
	if err := tenant.Check(p, sc); err != nil {
		s.logger.WarnContext(ctx, "cross-store product access rejected",
			logger.StoreID(sc.StoreID()),
			slog.String("product_store_id", p.GetStoreID()),
		)
		s.observe("mismatch")
		return err
	}
	return nil
}

func (s *Service) observeAuthz(err error) {
	if errors.Is(err, auth.ErrForbidden) {
		s.observe("forbidden")
	}
}

func (s *Service) observe(reason string) {
	if s.observer != nil {
		s.observer.ObserveIsolation(reason)
	}
}
