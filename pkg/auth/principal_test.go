package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/jwt"
)

func TestPrincipalFromClaims(t *testing.T) {
	t.Parallel()

	t.Run("full claims", func(t *testing.T) {
		c := &jwt.Claims{OwnerID: "o-1", FullName: "Alice"}
		c.Subject = "a@x.com"

		p := auth.PrincipalFromClaims(c)
		assert.Equal(t, "o-1", p.OwnerID)
		assert.Equal(t, "a@x.com", p.Email)
		assert.Equal(t, "Alice", p.FullName)
		assert.True(t, p.HasAuthority(auth.AuthorityOwner))
	})

	t.Run("partial claims map to empty strings", func(t *testing.T) {
		c := &jwt.Claims{}
		c.Subject = "a@x.com"

		p := auth.PrincipalFromClaims(c)
		assert.Empty(t, p.OwnerID)
		assert.Empty(t, p.FullName)
		assert.Equal(t, []auth.Authority{auth.AuthorityOwner}, p.Authorities)
	})

	t.Run("nil claims", func(t *testing.T) {
		assert.Nil(t, auth.PrincipalFromClaims(nil))
	})

	t.Run("nil principal has no authority", func(t *testing.T) {
		var p *auth.Principal
		assert.False(t, p.HasAuthority(auth.AuthorityOwner))
	})
}
