package account

import (
	"slices"
	"time"

	"github.com/dmitrymomot/storekit/pkg/jwt"
)

// Owner is a tenant account. Owners are soft-deactivated, never deleted.
type Owner struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	FullName      string     `json:"full_name"`
	StoreIDs      []string   `json:"store_ids"`
	ActiveStoreID string     `json:"active_store_id,omitempty"`
	Active        bool       `json:"active"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Identity returns the token subject for the owner.
func (o *Owner) Identity() jwt.Identity {
	return jwt.Identity{
		OwnerID:  o.ID,
		Email:    o.Email,
		FullName: o.FullName,
	}
}

// OwnsStore reports whether storeID is in the owner's store list.
func (o *Owner) OwnsStore(storeID string) bool {
	return slices.Contains(o.StoreIDs, storeID)
}

// Clone returns a deep copy so repositories never share slices with callers.
func (o *Owner) Clone() *Owner {
	if o == nil {
		return nil
	}
	c := *o
	c.StoreIDs = slices.Clone(o.StoreIDs)
	if o.LastLoginAt != nil {
		t := *o.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}
