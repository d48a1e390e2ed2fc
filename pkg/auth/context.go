package auth

import (
	"context"
	"log/slog"
)

type principalContextKey struct{}

// WithPrincipal attaches the principal to a request context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the request principal, if the request was authenticated.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// RequirePrincipalFromContext returns ErrUnauthorized for anonymous requests.
func RequirePrincipalFromContext(ctx context.Context) (*Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return p, nil
}

// LoggerExtractor returns a logger context extractor that adds owner_id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if p, ok := PrincipalFromContext(ctx); ok && p.OwnerID != "" {
			return slog.String("owner_id", p.OwnerID), true
		}
		return slog.Attr{}, false
	}
}
