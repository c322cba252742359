package store

import (
	"context"
	"errors"
	"time"

	"github.com/rbpata/sweetshop/pkg/shopsdk"
)

// ErrNotFound reports an absent record (e.g. no stored credential).
var ErrNotFound = errors.New("store: not found")

// Store is the client's durable state. Concrete drivers (sqlite) implement
// this. It holds exactly two things: the bearer-token credential slot and a
// local cache of the last fetched catalog.
type Store interface {
	Credentials() Credentials
	SweetsCache() SweetsCache

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Credentials is the single-slot token store. There is at most one token at
// a time; writing replaces the previous one.
type Credentials interface {
	// GetToken returns the stored token, or ErrNotFound when the slot is
	// empty.
	GetToken(ctx context.Context) (string, error)

	// SetToken stores the token, replacing any previous one.
	SetToken(ctx context.Context, token string) error

	// Clear empties the slot. Clearing an already-empty slot is not an
	// error.
	Clear(ctx context.Context) error
}

// SweetsCache is a local snapshot of the catalog, used as an offline
// fallback when the backend is unreachable. Mutating operations clear it so
// a stale snapshot is never presented after a known change.
type SweetsCache interface {
	// ReplaceAll swaps the cached snapshot for the given one and stamps the
	// refresh time.
	ReplaceAll(ctx context.Context, sweets []shopsdk.Sweet, refreshedAt time.Time) error

	// List returns the cached snapshot and when it was taken, or
	// ErrNotFound when no snapshot exists.
	List(ctx context.Context) ([]shopsdk.Sweet, time.Time, error)

	// Clear drops the snapshot.
	Clear(ctx context.Context) error
}
