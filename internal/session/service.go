// Package session runs the per-user state machine: one wallet, one
// inventory, one staking ledger and the presentation state, persisted as
// snapshots after every change.
//
// Every operation on a session holds that session's lock for its whole
// duration, including the simulated delay, so a session behaves like a
// single-threaded actor while different sessions proceed in parallel.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/concurrency"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/economy"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/repository"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Catalog is the part of the world pool generator sessions need
type Catalog interface {
	GenerateItem(id string) domain.Item
	Lookup(id string) (domain.Item, error)
}

var _ Catalog = (*catalog.Generator)(nil)

// Service defines the interface for session operations
type Service interface {
	Open(ctx context.Context) (domain.SessionView, error)
	Get(ctx context.Context, sessionID string) (domain.SessionView, error)
	Reset(ctx context.Context, sessionID string) error
	ActiveSessions() []string

	Connect(ctx context.Context, sessionID string) (domain.SessionView, error)
	Disconnect(ctx context.Context, sessionID string) (domain.SessionView, error)
	Spend(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error)
	Earn(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error)

	CraftCost(name, description, style string) int64
	ObtainCost(item domain.Item) int64
	Craft(ctx context.Context, sessionID string, req CraftRequest) (domain.Item, error)
	Obtain(ctx context.Context, sessionID, catalogID string) (domain.Item, error)
	Try(ctx context.Context, sessionID, itemID, prompt string) (Generation, error)
	Use(ctx context.Context, sessionID, itemID, prompt string) (Generation, error)
	Sell(ctx context.Context, sessionID, itemID string) (Sale, error)
	Inventory(ctx context.Context, sessionID string) ([]domain.Item, error)
	Stats(ctx context.Context, sessionID string) (domain.InventoryStats, error)

	Stake(ctx context.Context, sessionID string, amount int64) (domain.RewardSnapshot, error)
	Unstake(ctx context.Context, sessionID string) (Unstaked, error)
	Claim(ctx context.Context, sessionID string, kind domain.ClaimKind) (Claimed, error)
	Rewards(ctx context.Context, sessionID string) (domain.RewardSnapshot, error)
	Accrue(ctx context.Context, sessionID string) (int64, error)
	AccrueAll(ctx context.Context) (int, error)

	AppState(ctx context.Context, sessionID string) (domain.AppState, error)
	SaveAppState(ctx context.Context, sessionID string, state domain.AppState) (domain.AppState, error)

	Export(ctx context.Context, sessionID string) ([]byte, error)
	Import(ctx context.Context, sessionID string, data []byte) (domain.SessionView, error)

	Shutdown(ctx context.Context) error
}

type service struct {
	store   repository.Snapshots
	economy economy.Service
	catalog Catalog
	bus     event.Bus
	locks   *concurrency.LockManager
	cfg     Config

	mu       sync.RWMutex
	sessions map[string]*state

	rnd   func() float64
	sleep func(time.Duration)
	now   func() time.Time
	newID func() string
}

// NewService creates a new session service
func NewService(store repository.Snapshots, econ economy.Service, cat Catalog, bus event.Bus, cfg Config) Service {
	return &service{
		store:    store,
		economy:  econ,
		catalog:  cat,
		bus:      bus,
		locks:    concurrency.NewLockManager(),
		cfg:      cfg,
		sessions: make(map[string]*state),
		rnd:      utils.RandomFloat,
		sleep:    time.Sleep,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// delay waits one bounded random interval. It ignores cancellation; once
// validation has passed the operation always completes.
func (s *service) delay() {
	lo, hi := s.cfg.LatencyMin, s.cfg.LatencyMax
	if hi <= 0 {
		return
	}
	if hi < lo {
		hi = lo
	}
	s.sleep(lo + time.Duration(s.rnd()*float64(hi-lo)))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// load returns the live state of a session, reading it from storage on
// first access. The caller holds the session lock.
func (s *service) load(ctx context.Context, id string) (*state, error) {
	s.mu.RLock()
	st := s.sessions[id]
	s.mu.RUnlock()
	if st != nil {
		return st, nil
	}

	docs, err := s.store.LoadSnapshots(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}

	st = s.newState(id)
	if err := s.decodeInto(st, docs); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}

	s.mu.Lock()
	s.sessions[id] = st
	s.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgSessionLoaded)
	return st, nil
}

func (s *service) persist(ctx context.Context, st *state) error {
	docs, err := st.encode()
	if err != nil {
		return err
	}
	if err := s.store.SaveSnapshots(ctx, st.id, docs); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
	}
	return nil
}

// read runs fn against a session under its lock
func (s *service) read(ctx context.Context, id string, fn func(ctx context.Context, st *state) error) error {
	ctx = logger.WithSessionID(ctx, id)
	return s.locks.WithLock(id, func() error {
		st, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, st)
	})
}

// mutate runs fn under the session lock and persists the session when fn
// succeeds. If fn or the save fails the session is put back the way it was
// and the events fn raised are dropped.
func (s *service) mutate(ctx context.Context, id string, fn func(ctx context.Context, st *state) error) error {
	return s.read(ctx, id, func(ctx context.Context, st *state) error {
		cp := st.checkpoint()
		if err := fn(ctx, st); err != nil {
			s.rollback(ctx, st, cp)
			return err
		}
		if err := s.persist(ctx, st); err != nil {
			logger.FromContext(ctx).Warn(LogMsgRolledBack, "error", err)
			s.rollback(ctx, st, cp)
			return err
		}
		s.flush(ctx, st)
		return nil
	})
}

// flush publishes the events queued by a persisted operation
func (s *service) flush(ctx context.Context, st *state) {
	for _, evt := range st.outbox.take() {
		s.publish(ctx, evt)
	}
}

// rollback restores st to cp. Pool totals the operation moved are moved back.
func (s *service) rollback(ctx context.Context, st *state, cp checkpoint) {
	if delta := st.ledger.StakedKai - cp.ledger.StakedKai; delta != 0 {
		s.restorePool(ctx, delta)
	}
	st.wallet.Restore(cp.wallet)
	st.inv.Restore(cp.items)
	st.ledger = cp.ledger
	st.appState = cp.appState
	st.outbox.take()
	s.refreshRewards(st)
}

// restorePool undoes a pool adjustment of delta
func (s *service) restorePool(ctx context.Context, delta int64) {
	var (
		undo domain.Ledger
		err  error
	)
	if delta > 0 {
		undo.StakedKai = delta
		err = s.economy.ReleaseStake(ctx, &undo)
	} else {
		err = s.economy.SeedStake(ctx, &undo, -delta)
	}
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgPoolRestoreFailed, "delta", delta, "error", err)
	}
}

// settle accrues rewards earned at the old rate before anything that
// changes the rate
func (s *service) settle(ctx context.Context, st *state) int64 {
	if !st.wallet.Connected() {
		return 0
	}
	added := s.economy.Accrue(&st.ledger, st.inv.Items(), s.now())
	if added > 0 {
		st.emit(event.NewRewardsEvent(domain.EventTypeRewardsAccrued, st.id, "", added, st.ledger.UnclaimedRewards))
	}
	s.refreshRewards(st)
	return added
}

func (s *service) Open(ctx context.Context) (domain.SessionView, error) {
	id := s.newID()
	ctx = logger.WithSessionID(ctx, id)
	st := s.newState(id)
	st.appState.Timestamp = s.now().UnixMilli()

	err := s.locks.WithLock(id, func() error {
		if err := s.persist(ctx, st); err != nil {
			return err
		}
		s.mu.Lock()
		s.sessions[id] = st
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return domain.SessionView{}, err
	}

	logger.FromContext(ctx).Info(LogMsgSessionOpened)
	return st.view(), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (domain.SessionView, error) {
	var view domain.SessionView
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		view = st.view()
		return nil
	})
	return view, err
}

// ActiveSessions lists the sessions currently held in memory
func (s *service) ActiveSessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset returns the stake to the pool, deletes all stored state and forgets
// the session
func (s *service) Reset(ctx context.Context, sessionID string) error {
	err := s.read(ctx, sessionID, func(ctx context.Context, st *state) error {
		cp := st.checkpoint()
		if err := s.economy.ReleaseStake(ctx, &st.ledger); err != nil {
			return err
		}
		if err := s.store.DeleteSnapshots(ctx, sessionID); err != nil {
			s.rollback(ctx, st, cp)
			return err
		}
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()

		logger.FromContext(ctx).Info(LogMsgSessionReset)
		s.publish(ctx, event.NewSessionResetEvent(sessionID))
		return nil
	})
	if err != nil {
		return err
	}
	s.locks.Forget(sessionID)
	return nil
}

func (s *service) AppState(ctx context.Context, sessionID string) (domain.AppState, error) {
	var out domain.AppState
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		out = st.appState
		return nil
	})
	return out, err
}

// SaveAppState stores presentation state as given, stamping the save time
func (s *service) SaveAppState(ctx context.Context, sessionID string, as domain.AppState) (domain.AppState, error) {
	err := s.mutate(ctx, sessionID, func(_ context.Context, st *state) error {
		as.Timestamp = s.now().UnixMilli()
		st.appState = as
		return nil
	})
	if err != nil {
		return domain.AppState{}, err
	}
	return as, nil
}

// Shutdown writes every live session back to storage
func (s *service) Shutdown(ctx context.Context) error {
	ids := s.ActiveSessions()
	logger.FromContext(ctx).Info(LogMsgShutdownPersist, "sessions", len(ids))

	var errs []error
	for _, id := range ids {
		err := s.locks.WithLock(id, func() error {
			s.mu.RLock()
			st := s.sessions[id]
			s.mu.RUnlock()
			if st == nil {
				return nil
			}
			return s.persist(ctx, st)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
