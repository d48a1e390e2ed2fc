package tenant

import (
	"context"
	"log/slog"
)

// StoreContext binds an operation to a single, existing store.
// It can only be produced by Resolver.Resolve; the zero value matches nothing.
// Values are immutable and must be passed explicitly, never stored on a
// long-lived service.
type StoreContext struct {
	storeID string
}

// StoreID returns the id of the store the operation is scoped to.
func (c StoreContext) StoreID() string {
	return c.storeID
}

// Valid reports whether the context was produced by a successful resolution.
func (c StoreContext) Valid() bool {
	return c.storeID != ""
}

type contextKey struct{}

// WithStoreContext adds a resolved store context to a request context.
func WithStoreContext(ctx context.Context, sc StoreContext) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// FromContext returns the store context of the current request.
func FromContext(ctx context.Context) (StoreContext, bool) {
	sc, ok := ctx.Value(contextKey{}).(StoreContext)
	if !ok || !sc.Valid() {
		return StoreContext{}, false
	}
	return sc, true
}

// LoggerExtractor returns a logger context extractor that adds store_id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if sc, ok := FromContext(ctx); ok {
			return slog.String("store_id", sc.StoreID()), true
		}
		return slog.Attr{}, false
	}
}
