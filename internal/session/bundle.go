package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Export bundles every snapshot of a session as zstd-compressed JSON
func (s *service) Export(ctx context.Context, sessionID string) ([]byte, error) {
	var raw []byte
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		docs, err := st.encode()
		if err != nil {
			return err
		}
		b := bundle{
			Version:    BundleVersion,
			SessionID:  st.id,
			ExportedAt: s.now().UTC(),
			Snapshots:  make(map[string]json.RawMessage, len(docs)),
		}
		for k, v := range docs {
			b.Snapshots[k] = v
		}
		raw, err = json.Marshal(b)
		return err
	})
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

func decodeBundle(data []byte) (bundle, error) {
	// The memory cap bounds DecodeAll output whether or not the frame
	// declares its size.
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecodedBundleBytes),
		zstd.WithDecoderConcurrency(1))
	if err != nil {
		return bundle{}, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return bundle{}, fmt.Errorf("%w: %v", domain.ErrInvalidBundle, err)
	}

	var b bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return bundle{}, fmt.Errorf("%w: %v", domain.ErrInvalidBundle, err)
	}
	if b.Version != BundleVersion {
		return bundle{}, fmt.Errorf("%w: "+ErrMsgBundleVersionFmt, domain.ErrInvalidBundle, b.Version)
	}
	if len(b.Snapshots) == 0 {
		return bundle{}, fmt.Errorf("%w: %s", domain.ErrInvalidBundle, ErrMsgBundleEmpty)
	}
	return b, nil
}

// sanitizeImported clamps numbers a bundle cannot legitimately hold
func sanitizeImported(st *state) {
	l := &st.ledger
	l.StakedKai = max(l.StakedKai, 0)
	l.WorldPoolShare = max(l.WorldPoolShare, 0)
	l.UnclaimedRewards = max(l.UnclaimedRewards, 0)
	l.AccrualRemainder = max(l.AccrualRemainder, 0)
	l.WorldPoolPercentage = min(max(l.WorldPoolPercentage, 0), 100)

	items := st.inv.Items()
	for i := range items {
		items[i].DailyEarnings = min(max(items[i].DailyEarnings, 0), MaxImportedDailyEarnings)
		items[i].TotalEarnings = max(items[i].TotalEarnings, 0)
		items[i].UsageCount = max(items[i].UsageCount, 0)
	}
	st.inv.Restore(items)
}

// Import replaces the state of sessionID with an exported bundle. The
// session is created if it does not exist. Any stake held before the import
// goes back to the pool and the imported stake is registered against the
// current pool totals. On failure the previous session and the pool totals
// are left as they were.
func (s *service) Import(ctx context.Context, sessionID string, data []byte) (domain.SessionView, error) {
	b, err := decodeBundle(data)
	if err != nil {
		return domain.SessionView{}, err
	}
	docs := make(map[string][]byte, len(b.Snapshots))
	for k, v := range b.Snapshots {
		docs[k] = v
	}

	ctx = logger.WithSessionID(ctx, sessionID)
	var view domain.SessionView
	err = s.locks.WithLock(sessionID, func() error {
		fresh := s.newState(sessionID)
		if err := s.decodeInto(fresh, docs); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidBundle, err)
		}
		sanitizeImported(fresh)

		existing, err := s.load(ctx, sessionID)
		var cp checkpoint
		switch {
		case err == nil:
			cp = existing.checkpoint()
			if err := s.economy.ReleaseStake(ctx, &existing.ledger); err != nil {
				return err
			}
		case errors.Is(err, domain.ErrSessionNotFound):
			existing = nil
		default:
			return err
		}
		restoreExisting := func() {
			if existing != nil {
				s.rollback(ctx, existing, cp)
			}
		}

		if staked := fresh.ledger.StakedKai; staked > 0 {
			fresh.ledger.StakedKai = 0
			if err := s.economy.SeedStake(ctx, &fresh.ledger, staked); err != nil {
				restoreExisting()
				return err
			}
		}
		s.refreshRewards(fresh)

		if err := s.persist(ctx, fresh); err != nil {
			if staked := fresh.ledger.StakedKai; staked > 0 {
				s.restorePool(ctx, staked)
			}
			restoreExisting()
			return err
		}
		s.mu.Lock()
		s.sessions[sessionID] = fresh
		s.mu.Unlock()

		view = fresh.view()
		logger.FromContext(ctx).Info(LogMsgSessionImported, "source_session", b.SessionID)
		return nil
	})
	return view, err
}
