// Package storefront mounts the public HTTP API: owner authentication,
// store administration and the store-scoped product catalog.
//
// Every request passes through request id, metrics and authentication
// middleware. Authentication never rejects on its own; routes that need an
// identity either sit behind auth.RequirePrincipal or get an
// auth.ErrUnauthorized from the service. Routes under /stores/{storeID}
// resolve a fresh tenant.StoreContext before the handler runs.
//
// Cross-store access is reported exactly like a missing resource: 404 with
// code "not_found". 403 is returned only when a principal acts on a store it
// can see but does not own.
package storefront
