// Package tenant scopes requests to a single store and enforces tenant
// isolation between stores.
//
// Three pieces cooperate:
//
//   - Resolver turns a store id taken from the request into a StoreContext
//     after confirming the store exists. The context is an immutable value
//     passed explicitly to every store-scoped operation (or carried in the
//     request's context.Context); it is never cached on a shared service.
//   - AssertBelongsToStore and Check compare a resource's store id with the
//     active StoreContext and fail with ErrTenantMismatch on any difference.
//     Every load, create, update and delete of a store-scoped entity calls one
//     of them before returning data or committing a mutation.
//   - Authorizer decides whether a principal owns a store. It reloads the store
//     on every decision and gates administrative operations in addition to,
//     not instead of, the isolation guard.
//
// # Usage
//
//	resolver := tenant.NewResolver(storeRepo)
//	authz := tenant.NewAuthorizer(storeRepo)
//
//	r.Route("/stores/{storeID}", func(r chi.Router) {
//		r.Use(tenant.Middleware(resolver, tenant.URLParam("storeID")))
//		r.Get("/products/{productID}", func(w http.ResponseWriter, r *http.Request) {
//			sc, _ := tenant.FromContext(r.Context())
//			product, err := catalog.Get(r.Context(), sc, chi.URLParam(r, "productID"))
//			// ...
//		})
//	})
//
// # Error Handling
//
// ErrStoreNotFound and ErrTenantMismatch are both rendered as "not found" so a
// caller cannot discover resources of other tenants. ErrUnavailable marks a
// lookup that timed out or was cancelled and is safe to retry.
package tenant
