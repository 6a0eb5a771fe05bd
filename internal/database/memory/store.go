// Package memory is the default in-process storage backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/repository"
)

// Store keeps pool totals and session snapshots in maps guarded by one mutex
type Store struct {
	mu        sync.RWMutex
	pool      domain.PoolStats
	snapshots map[string]map[string][]byte
}

var _ repository.Store = (*Store)(nil)

// NewStore returns a store seeded with the default pool totals
func NewStore() *Store {
	return &Store{
		pool:      domain.DefaultPoolStats(),
		snapshots: make(map[string]map[string][]byte),
	}
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error               { return nil }

func (s *Store) GetPoolStats(context.Context) (domain.PoolStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pool, nil
}

func (s *Store) AdjustStaked(_ context.Context, delta int64) (domain.PoolStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.TotalKaiStaked += delta
	if s.pool.TotalKaiStaked < 0 {
		s.pool.TotalKaiStaked = 0
	}
	return s.pool, nil
}

func (s *Store) LoadSnapshots(_ context.Context, sessionID string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.snapshots[sessionID]
	if !ok || len(stored) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	out := make(map[string][]byte, len(stored))
	for k, v := range stored {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (s *Store) SaveSnapshots(_ context.Context, sessionID string, docs map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.snapshots[sessionID]
	if !ok {
		stored = make(map[string][]byte, len(docs))
		s.snapshots[sessionID] = stored
	}
	for k, v := range docs {
		stored[k] = append([]byte(nil), v...)
	}
	return nil
}

func (s *Store) DeleteSnapshots(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}

func (s *Store) ListSessions(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.snapshots))
	for id := range s.snapshots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
