package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/storekit/pkg/clientip"
	"github.com/dmitrymomot/storekit/pkg/logger"
)

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by scope and client address. The address set by
// clientip.Middleware is preferred over RemoteAddr.
func ByClientIP(scope string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientip.FromContext(r.Context())
		if ip == "" {
			ip = clientip.FromRequest(r)
		}
		if ip == "" {
			ip = "unknown"
		}
		return scope + ":" + ip
	}
}

// ErrorHandler writes the response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	errorHandler ErrorHandler
	onLimited    func(r *http.Request)
	logger       *slog.Logger
	now          func() time.Time
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithErrorHandler sets the handler for rejected requests.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithOnLimited registers a callback invoked for every rejected request.
func WithOnLimited(fn func(r *http.Request)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onLimited = fn
	}
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMiddlewareClock overrides the clock used for Retry-After.
func WithMiddlewareClock(now func() time.Time) MiddlewareOption {
	return func(c *middlewareConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Middleware rejects requests once the bucket for keyFunc(r) is empty.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		errorHandler: defaultErrorHandler,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := b.Allow(r.Context(), keyFunc(r))
			if err != nil {
				cfg.logger.WarnContext(r.Context(), "rate limit check failed, allowing request",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retryAfter := int((result.RetryAfter(cfg.now()) + time.Second - 1) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				if cfg.onLimited != nil {
					cfg.onLimited(r)
				}
				cfg.errorHandler(w, r, ErrLimitExceeded)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
