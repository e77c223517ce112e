// Package memory provides the in-memory implementations of the store
// interfaces. All state lives in maps guarded by RWMutexes and resets on
// restart: handler goroutines run in parallel under net/http, so every
// mutation is serialized while reads may proceed concurrently.
package memory
