// Package ratelimiter provides token bucket rate limiting with in-memory and
// Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request consumes one token; a request that finds the
// bucket short is rejected without draining it further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP("login"))).
//		Post("/auth/login", login)
//
// RedisStore shares bucket state between processes. The refill and consume
// steps run in a single Lua script so concurrent requests cannot both spend
// the last token.
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on rejections, which are
// reported through the configured error handler as ErrLimitExceeded. Storage
// failures are logged and the request is let through.
package ratelimiter
