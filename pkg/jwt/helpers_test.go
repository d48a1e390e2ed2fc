package jwt_test

import "crypto/sha512"

// accessKeyFor mirrors DeriveKeys so tests can forge tokens with a known key.
func accessKeyFor(secret string) []byte {
	sum := sha512.Sum512([]byte(secret))
	return sum[:]
}
