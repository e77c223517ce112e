// Package api implements the HTTP handlers for the book-review catalog.
//
// Handlers are a thin translation layer: they validate the presence and
// shape of path and body parameters, delegate to the stores and the auth
// service, and map results onto status codes and the standard JSON envelope.
// No business logic lives here.
package api
