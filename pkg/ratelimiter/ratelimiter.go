package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Store persists bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it when
	// enough are available. remaining is negative when they were not, in which
	// case the bucket is left untouched. nextRefill is when the next token arrives.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, nextRefill time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}

// Bucket is a token bucket rate limiter.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket creates a token bucket rate limiter backed by store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: cfg}, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if n > b.config.Capacity {
		return nil, fmt.Errorf("%w: %d exceeds capacity %d", ErrInvalidTokenCount, n, b.config.Capacity)
	}

	remaining, nextRefill, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return nil, err
	}

	resetAt := nextRefill
	if remaining < 0 {
		deficit := -remaining
		intervals := (deficit + b.config.RefillRate - 1) / b.config.RefillRate
		resetAt = nextRefill.Add(time.Duration(intervals-1) * b.config.RefillInterval)
	}

	return &Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the bucket for key, e.g. after a successful login.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
