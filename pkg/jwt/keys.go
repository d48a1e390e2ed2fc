package jwt

import "crypto/sha512"

// Keys holds the two independent HMAC keys. The zero value is unusable.
// Keys are never mutated after DeriveKeys returns, so a single value may be
// shared by any number of goroutines.
type Keys struct {
	access  []byte
	refresh []byte
}

// DeriveKeys hashes each secret with SHA-512 to obtain 64-byte signing keys.
// There is no fallback key: empty or identical secrets are an error.
func DeriveKeys(accessSecret, refreshSecret string) (Keys, error) {
	if accessSecret == "" || refreshSecret == "" {
		return Keys{}, ErrMissingSecret
	}
	if accessSecret == refreshSecret {
		return Keys{}, ErrIdenticalSecrets
	}

	access := sha512.Sum512([]byte(accessSecret))
	refresh := sha512.Sum512([]byte(refreshSecret))

	return Keys{access: access[:], refresh: refresh[:]}, nil
}
