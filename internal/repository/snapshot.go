package repository

import "context"

// Snapshots persists per-session state as opaque JSON documents keyed by name
// (wallet, inventory, staking, app_state).
type Snapshots interface {
	// LoadSnapshots returns every document stored for the session.
	// A session with nothing stored yields domain.ErrSessionNotFound.
	LoadSnapshots(ctx context.Context, sessionID string) (map[string][]byte, error)
	// SaveSnapshots upserts all given documents in one transaction.
	SaveSnapshots(ctx context.Context, sessionID string, docs map[string][]byte) error
	DeleteSnapshots(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ([]string, error)
}

// Store is a complete storage backend
type Store interface {
	Pool
	Snapshots
	Ping(ctx context.Context) error
	Close() error
}
