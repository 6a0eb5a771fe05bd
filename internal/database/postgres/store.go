// Package postgres stores sessions and pool totals in PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/PotionCraft_Go/internal/database"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore wraps an open pool. The schema must already be migrated.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Open migrates the schema behind pool and returns a ready store
func Open(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := database.Migrate(ctx, sqlDB, database.DriverPostgres); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return NewStore(pool), nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

func scanPoolStats(row pgx.Row) (domain.PoolStats, error) {
	var stats domain.PoolStats
	err := row.Scan(&stats.TotalKaiEarned, &stats.TotalKaiStaked, &stats.TotalPotions, &stats.ActiveUsers, &stats.DailyVolume)
	return stats, err
}

// GetPoolStats reads the world pool totals
func (s *Store) GetPoolStats(ctx context.Context) (domain.PoolStats, error) {
	stats, err := scanPoolStats(s.db.QueryRow(ctx, queryPoolStats, poolStatsID))
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolStats, err)
	}
	return stats, nil
}

// AdjustStaked applies delta in a single statement so concurrent sessions
// cannot lose updates.
func (s *Store) AdjustStaked(ctx context.Context, delta int64) (domain.PoolStats, error) {
	stats, err := scanPoolStats(s.db.QueryRow(ctx, queryAdjustStaked, poolStatsID, delta))
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToAdjustStaked, err)
	}
	return stats, nil
}

// LoadSnapshots returns every document stored for a session
func (s *Store) LoadSnapshots(ctx context.Context, sessionID string) (map[string][]byte, error) {
	rows, err := s.db.Query(ctx, queryLoadSnapshots, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
	}
	defer rows.Close()

	docs := make(map[string][]byte)
	for rows.Next() {
		var key string
		var doc []byte
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
		}
		docs[key] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return docs, nil
}

// SaveSnapshots upserts all documents in one transaction
func (s *Store) SaveSnapshots(ctx context.Context, sessionID string, docs map[string][]byte) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	for key, doc := range docs {
		if _, err := tx.Exec(ctx, queryUpsertSnapshot, sessionID, key, string(doc)); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToSaveSnapshot, key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	logger.FromContext(ctx).Debug("Snapshots saved", "session_id", sessionID, "keys", len(docs))
	return nil
}

// DeleteSnapshots removes everything stored for a session
func (s *Store) DeleteSnapshots(ctx context.Context, sessionID string) error {
	if _, err := s.db.Exec(ctx, queryDeleteSnapshots, sessionID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSnapshots, err)
	}
	return nil
}

// ListSessions returns the ids of every stored session
func (s *Store) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, queryListSessions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	return ids, nil
}
