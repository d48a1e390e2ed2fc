package tenant

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storekit/pkg/logger"
)

// ParamFunc extracts a store id from a request.
type ParamFunc func(r *http.Request) string

// URLParam reads a chi route parameter, e.g. URLParam("storeID") for
// routes mounted under /stores/{storeID}.
func URLParam(name string) ParamFunc {
	return func(r *http.Request) string {
		return chi.URLParam(r, name)
	}
}

// PathSegment reads the 1-based path segment at position, for routers that
// do not expose named parameters.
func PathSegment(position int) ParamFunc {
	return func(r *http.Request) string {
		if position < 1 {
			return ""
		}
		path := strings.Trim(r.URL.Path, "/")
		if path == "" {
			return ""
		}
		parts := strings.Split(path, "/")
		if position > len(parts) {
			return ""
		}
		return parts[position-1]
	}
}

// Middleware resolves a fresh StoreContext for every request that carries a
// store id and stores it in the request context. Requests without a store id
// are rejected with ErrInvalidStoreID.
func Middleware(resolver *Resolver, param ParamFunc, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, err := resolver.Resolve(r.Context(), param(r))
			if err != nil {
				level := slog.LevelDebug
				if !errors.Is(err, ErrStoreNotFound) && !errors.Is(err, ErrInvalidStoreID) {
					level = slog.LevelWarn
				}
				cfg.logger.Log(r.Context(), level, "store context not resolved",
					logger.Error(err),
					logger.Component("tenant"),
				)
				cfg.errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStoreContext(r.Context(), sc)))
		})
	}
}

// RequireStoreContext rejects requests that reach a handler without a
// resolved store context.
func RequireStoreContext(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoStoreContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
