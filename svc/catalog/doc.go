// Package catalog serves products, the representative store-scoped resource.
//
// Every read and write goes through the tenant isolation guard: a product is
// returned or deleted only if its store id equals the store of the
// tenant.StoreContext passed to the call. Writes also require the principal
// to own that store.
package catalog
