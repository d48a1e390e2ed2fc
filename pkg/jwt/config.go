package jwt

import (
	"errors"
	"time"
)

// Config holds the secret seeds and lifetimes for both token kinds.
// Secrets are arbitrary-length strings; fixed-length keys are derived from them.
type Config struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET,required"`        // AccessSecret seeds the access signing key.
	RefreshSecret string        `env:"JWT_REFRESH_SECRET,required"`       // RefreshSecret seeds the refresh signing key.
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`   // AccessTTL is the access token lifetime.
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"` // RefreshTTL is the refresh token lifetime.
	Issuer        string        `env:"JWT_ISSUER" envDefault:"storekit"`  // Issuer is written to and required in the iss claim.
}

// Validate reports configuration that must abort startup.
func (c Config) Validate() error {
	var errs []error
	if c.AccessSecret == "" || c.RefreshSecret == "" {
		errs = append(errs, ErrMissingSecret)
	} else if c.AccessSecret == c.RefreshSecret {
		errs = append(errs, ErrIdenticalSecrets)
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		errs = append(errs, ErrInvalidLifetime)
	}
	return errors.Join(errs...)
}
