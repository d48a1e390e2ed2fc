package auth

import (
	"slices"

	"github.com/dmitrymomot/storekit/pkg/jwt"
)

// Authority is a coarse grant carried by a principal.
type Authority string

// AuthorityOwner is the single default authority assigned to every store owner.
const AuthorityOwner Authority = "ROLE_OWNER"

// Principal is the identity of the caller for the lifetime of one request.
// It is built only by PrincipalFromClaims and never persisted or shared.
type Principal struct {
	OwnerID     string
	Email       string
	FullName    string
	Authorities []Authority
}

// PrincipalFromClaims maps verified claims to a principal without any I/O.
// Missing optional claims become empty strings. Returns nil for nil claims.
func PrincipalFromClaims(c *jwt.Claims) *Principal {
	if c == nil {
		return nil
	}
	return &Principal{
		OwnerID:     c.OwnerID,
		Email:       c.Subject,
		FullName:    c.FullName,
		Authorities: []Authority{AuthorityOwner},
	}
}

// HasAuthority reports whether the principal carries the given authority.
func (p *Principal) HasAuthority(a Authority) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Authorities, a)
}
