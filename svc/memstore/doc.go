// Package memstore provides in-memory repositories for owners, stores and
// products. They back STORAGE_DRIVER=memory and the service tests.
//
// Values are copied on the way in and out, so callers never share state with
// the repository or with each other.
package memstore
