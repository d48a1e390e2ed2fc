// Package account implements the owner lifecycle of the storefront backend:
// registration, login, refresh token rotation, logout and store management.
//
// Persistence is reached through OwnerRepository and StoreRepository, which are
// implemented by svc/memstore and svc/mongostore. Passwords are hashed with
// bcrypt. Tokens come from pkg/jwt.
//
// Access tokens stay stateless. The Denylist is consulted only when a refresh
// token is rotated or logged out: each refresh token id is revoked on first
// use, so a stolen refresh token stops working once the owner rotates it.
// MemoryDenylist serves single-instance deployments and RedisDenylist shares
// revocations between instances.
//
// Store operations take an explicit tenant.StoreContext produced by
// tenant.Resolver. Administrative operations additionally require the
// principal to own the store; ownership is reloaded on every call.
//
//	svc := account.NewService(owners, stores, tokens,
//		account.WithDenylist(account.NewRedisDenylist(client, "storekit", nil)),
//		account.WithObserver(m),
//	)
//	pair, owner, err := svc.Login(ctx, "a@x.com", "Passw0rd1")
package account
