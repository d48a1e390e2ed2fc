// Package jwt issues and verifies the stateless bearer tokens used to
// authenticate store owners.
//
// Two independent HMAC-SHA512 keys are derived from configured secrets with
// SHA-512 (see DeriveKeys): one signs access tokens, the other refresh tokens.
// A token signed with one key never verifies with the other, and every token
// also carries a token_use claim that must match the verifier. Configured
// secrets can therefore be of any length, and a leaked access token cannot be
// replayed against the refresh endpoint.
//
// # Usage
//
//	svc, err := jwt.New(jwt.Config{
//		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
//		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
//		AccessTTL:     15 * time.Minute,
//		RefreshTTL:    7 * 24 * time.Hour,
//		Issuer:        "storekit",
//	})
//	if err != nil {
//		log.Fatal(err) // never continue without keys
//	}
//
//	token, _ := svc.IssueAccessToken(jwt.Identity{OwnerID: id, Email: email})
//	claims, err := svc.VerifyAccessToken(token)
//
// # Error Handling
//
// Verification returns only ErrInvalidToken or ErrExpiredToken. Library errors,
// signature details and key material are never exposed. ErrExpiredToken is
// reported only for tokens whose signature was valid.
//
// Tokens cannot be revoked individually before they expire; refresh token
// revocation lives in the account service and is consulted only on the refresh
// path.
package jwt
