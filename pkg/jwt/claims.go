package jwt

import jwtv5 "github.com/golang-jwt/jwt/v5"

// TokenUse distinguishes access from refresh tokens inside the claim set.
type TokenUse string

const (
	UseAccess  TokenUse = "access"
	UseRefresh TokenUse = "refresh"
)

// Identity is the subject a token is issued for.
type Identity struct {
	OwnerID  string
	Email    string
	FullName string
}

// Claims is the claim set shared by access and refresh tokens.
// Subject carries the owner email.
type Claims struct {
	OwnerID  string   `json:"ownerId,omitempty"`
	FullName string   `json:"fullName,omitempty"`
	TokenUse TokenUse `json:"token_use"`
	jwtv5.RegisteredClaims
}

// Email returns the token subject.
func (c *Claims) Email() string {
	return c.Subject
}
