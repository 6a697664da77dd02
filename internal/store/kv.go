// Package store persists finance and calendar snapshots. The storage
// surface is a small key-value port with whole-snapshot reads and writes;
// backends only need to keep bytes under a fixed key.
package store

import "context"

// Storage keys for the two snapshot slots.
const (
	FinanceKey = "finance-personal-data"
	EventsKey  = "calendar-events"
)

// KV is the persistence port. Implementations must be safe for concurrent
// use; every write is an atomic whole-value overwrite.
type KV interface {
	// Get returns the stored bytes for key. The boolean reports whether
	// the key exists at all.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}
