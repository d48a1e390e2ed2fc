// Package auth derives the per-request identity of a store owner.
//
// Authenticator reads a bearer credential from the Authorization header (or,
// optionally, a cookie), verifies it locally with the access key and attaches a
// Principal to the request context. Any failure leaves the request anonymous so
// that public routes stay reachable; routes that need an identity wrap
// themselves in RequirePrincipal or call RequirePrincipalFromContext.
//
// The authenticator performs no storage I/O and holds no per-request state.
//
//	authn := auth.NewAuthenticator(tokens, auth.WithCookie("access_token"))
//	r.Use(authn.Middleware)
//	r.With(auth.RequirePrincipal(nil)).Get("/me", meHandler)
package auth
