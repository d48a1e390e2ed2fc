package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// memorySweepInterval bounds how often Revoke walks the whole map.
const memorySweepInterval = time.Minute

// MemoryDenylist is an in-process Denylist for single-instance deployments
// and tests. Expired entries are dropped by Revoke at most once per sweep
// interval, and by Len.
type MemoryDenylist struct {
	mu        sync.Mutex
	entries   map[string]time.Time
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryDenylist creates an empty denylist. A nil clock uses time.Now.
func NewMemoryDenylist(now func() time.Time) *MemoryDenylist {
	if now == nil {
		now = time.Now
	}
	return &MemoryDenylist{
		entries:   make(map[string]time.Time),
		now:       now,
		lastSweep: now(),
	}
}

func (d *MemoryDenylist) Revoke(_ context.Context, jti string, expiresAt time.Time) (bool, error) {
	if jti == "" {
		return false, ErrInvalidInput
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.lastSweep) >= memorySweepInterval {
		d.sweep(now)
	}
	if exp, ok := d.entries[jti]; ok && exp.After(now) {
		return false, nil
	}
	if !expiresAt.After(now) {
		// Already expired tokens are rejected by verification anyway.
		return true, nil
	}
	d.entries[jti] = expiresAt
	return true, nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	exp, ok := d.entries[jti]
	return ok && exp.After(d.now()), nil
}

// Len returns the number of live entries.
func (d *MemoryDenylist) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sweep(d.now())
	return len(d.entries)
}

func (d *MemoryDenylist) sweep(now time.Time) {
	for k, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, k)
		}
	}
	d.lastSweep = now
}

// RedisDenylist stores revoked token ids in Redis with a TTL equal to the
// remaining token lifetime, so entries disappear together with the token.
type RedisDenylist struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisDenylist creates a Redis backed denylist. Keys are written as
// "<prefix>:revoked:<jti>".
func NewRedisDenylist(client redis.UniversalClient, prefix string, now func() time.Time) *RedisDenylist {
	if now == nil {
		now = time.Now
	}
	if prefix == "" {
		prefix = "storekit"
	}
	return &RedisDenylist{client: client, prefix: prefix, now: now}
}

func (d *RedisDenylist) key(jti string) string {
	return d.prefix + ":revoked:" + jti
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	if jti == "" {
		return false, ErrInvalidInput
	}
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return true, nil
	}

	ok, err := d.client.SetNX(ctx, d.key(jti), 1, ttl).Result()
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	return ok, nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	return n > 0, nil
}
