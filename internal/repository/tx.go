package repository

import "context"

// Tx is the part of a backend transaction the shared helpers need
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
