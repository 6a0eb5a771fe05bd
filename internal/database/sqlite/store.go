// Package sqlite stores sessions and pool totals in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/osse101/PotionCraft_Go/internal/database"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/repository"
)

const poolStatsID = 1

// Error Messages
const (
	ErrMsgPathRequired            = "sqlite path is required"
	ErrMsgFailedToOpen            = "failed to open sqlite db"
	ErrMsgFailedToBeginTx         = "failed to begin transaction"
	ErrMsgFailedToCommit          = "failed to commit transaction"
	ErrMsgFailedToGetPoolStats    = "failed to get pool stats"
	ErrMsgFailedToAdjustStaked    = "failed to adjust staked total"
	ErrMsgFailedToLoadSnapshots   = "failed to load snapshots"
	ErrMsgFailedToSaveSnapshot    = "failed to save snapshot"
	ErrMsgFailedToDeleteSnapshots = "failed to delete snapshots"
	ErrMsgFailedToListSessions    = "failed to list sessions"
)

const (
	queryPoolStats = `
		SELECT total_kai_earned, total_kai_staked, total_potions, active_users, daily_volume
		FROM pool_stats WHERE id = ?`

	queryAdjustStaked = `
		UPDATE pool_stats
		SET total_kai_staked = MAX(0, total_kai_staked + ?),
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		WHERE id = ?
		RETURNING total_kai_earned, total_kai_staked, total_potions, active_users, daily_volume`

	queryLoadSnapshots = `SELECT key, doc FROM session_snapshots WHERE session_id = ?`

	queryUpsertSnapshot = `
		INSERT INTO session_snapshots (session_id, key, doc, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (session_id, key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`

	queryDeleteSnapshots = `DELETE FROM session_snapshots WHERE session_id = ?`

	queryListSessions = `SELECT DISTINCT session_id FROM session_snapshots ORDER BY session_id`
)

// Store implements repository.Store on SQLite
type Store struct {
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

// sqlTx adapts *sql.Tx to repository.Tx
type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Commit(context.Context) error   { return t.tx.Commit() }
func (t sqlTx) Rollback(context.Context) error { return t.tx.Rollback() }

// Open opens (creating if needed) the database at path and migrates it
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	// one writer at a time keeps SQLITE_BUSY away
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func scanPoolStats(row *sql.Row) (domain.PoolStats, error) {
	var stats domain.PoolStats
	err := row.Scan(&stats.TotalKaiEarned, &stats.TotalKaiStaked, &stats.TotalPotions, &stats.ActiveUsers, &stats.DailyVolume)
	return stats, err
}

// GetPoolStats reads the world pool totals
func (s *Store) GetPoolStats(ctx context.Context) (domain.PoolStats, error) {
	stats, err := scanPoolStats(s.db.QueryRowContext(ctx, queryPoolStats, poolStatsID))
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolStats, err)
	}
	return stats, nil
}

// AdjustStaked applies delta in a single statement
func (s *Store) AdjustStaked(ctx context.Context, delta int64) (domain.PoolStats, error) {
	stats, err := scanPoolStats(s.db.QueryRowContext(ctx, queryAdjustStaked, delta, poolStatsID))
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToAdjustStaked, err)
	}
	return stats, nil
}

// LoadSnapshots returns every document stored for a session
func (s *Store) LoadSnapshots(ctx context.Context, sessionID string) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, queryLoadSnapshots, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
	}
	defer rows.Close()

	docs := make(map[string][]byte)
	for rows.Next() {
		var key, doc string
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
		}
		docs[key] = []byte(doc)
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
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, sqlTx{tx: tx})

	for key, doc := range docs {
		if _, err := tx.ExecContext(ctx, queryUpsertSnapshot, sessionID, key, string(doc)); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToSaveSnapshot, key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// DeleteSnapshots removes everything stored for a session
func (s *Store) DeleteSnapshots(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteSnapshots, sessionID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSnapshots, err)
	}
	return nil
}

// ListSessions returns the ids of every stored session
func (s *Store) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryListSessions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	return ids, nil
}
