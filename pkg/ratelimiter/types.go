package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"LOGIN_RATE_LIMIT_CAPACITY" envDefault:"10"`         // Capacity is the burst size.
	RefillRate     int           `env:"LOGIN_RATE_LIMIT_REFILL_RATE" envDefault:"1"`       // RefillRate is the number of tokens added per interval.
	RefillInterval time.Duration `env:"LOGIN_RATE_LIMIT_REFILL_INTERVAL" envDefault:"30s"` // RefillInterval is how often tokens are added.
}

// Validate reports a configuration the bucket cannot run with.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Limit is the bucket capacity.
	Remaining int       // Remaining tokens; negative when the request was rejected.
	ResetAt   time.Time // ResetAt is when the next token arrives, or when the rejected request would fit.
}

// Allowed reports whether the request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a rejected caller should wait, measured from now.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}
