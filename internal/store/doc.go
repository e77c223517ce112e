// Package store defines the persistence interfaces for the catalog, user,
// and session data, along with the sentinel errors those interfaces return.
//
// The interfaces take a context.Context and may be backed by any datastore;
// the in-memory implementations live in internal/platform/memory. Handlers
// and services depend only on this package, never on a concrete store.
package store
