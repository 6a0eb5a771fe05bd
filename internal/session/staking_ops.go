package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Stake moves amount KAI from the wallet into the world pool
func (s *service) Stake(ctx context.Context, sessionID string, amount int64) (domain.RewardSnapshot, error) {
	var out domain.RewardSnapshot
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if amount <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
		}
		if err := st.wallet.CheckSpend(amount); err != nil {
			return err
		}
		s.delay()
		s.settle(ctx, st)

		stats, err := s.economy.Stake(ctx, &st.ledger, amount, st.wallet)
		if err != nil {
			return err
		}
		s.refreshRewards(st)
		out = st.rewards
		st.emit(event.NewStakingEvent(domain.EventTypeKaiStaked, st.id, amount, st.ledger, stats.TotalKaiStaked))
		return nil
	})
	return out, err
}

// Unstake pays back the stake plus the world pool share
func (s *service) Unstake(ctx context.Context, sessionID string) (Unstaked, error) {
	var out Unstaked
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if st.ledger.StakedKai <= 0 {
			return domain.ErrNothingStaked
		}
		s.delay()
		s.settle(ctx, st)

		payout, stats, err := s.economy.Unstake(ctx, &st.ledger, st.wallet)
		if err != nil {
			return err
		}
		s.refreshRewards(st)
		out = Unstaked{Payout: payout, Balance: st.wallet.Balance(), Rewards: st.rewards}
		st.emit(event.NewStakingEvent(domain.EventTypeKaiUnstaked, st.id, payout, st.ledger, stats.TotalKaiStaked))
		return nil
	})
	return out, err
}

// Claim pays out the inventory rewards or the world pool share
func (s *service) Claim(ctx context.Context, sessionID string, kind domain.ClaimKind) (Claimed, error) {
	var out Claimed
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		s.settle(ctx, st)
		if _, err := s.economy.Claimable(st.ledger, kind, st.wallet); err != nil {
			return err
		}
		s.delay()

		amount, err := s.economy.Claim(ctx, &st.ledger, kind, st.wallet)
		if err != nil {
			return err
		}
		s.refreshRewards(st)
		out = Claimed{Kind: kind, Amount: amount, Balance: st.wallet.Balance(), Rewards: st.rewards}
		st.emit(event.NewRewardsEvent(domain.EventTypeRewardsClaimed, st.id, kind, amount, st.ledger.UnclaimedRewards))
		return nil
	})
	return out, err
}

// Rewards returns the current reward view without accruing
func (s *service) Rewards(ctx context.Context, sessionID string) (domain.RewardSnapshot, error) {
	var out domain.RewardSnapshot
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		out = st.rewards
		return nil
	})
	return out, err
}

// Accrue credits the rewards a connected session earned since its last
// accrual and returns the amount added
func (s *service) Accrue(ctx context.Context, sessionID string) (int64, error) {
	var added int64
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		added = s.settle(ctx, st)
		return nil
	})
	return added, err
}

// AccrueAll accrues every live session and returns how many were processed.
// One failing session does not stop the others.
func (s *service) AccrueAll(ctx context.Context) (int, error) {
	var errs []error
	processed := 0
	for _, id := range s.ActiveSessions() {
		if _, err := s.Accrue(ctx, id); err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				continue
			}
			logger.FromContext(ctx).Warn(LogMsgAccrueFailed, "session_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		processed++
	}
	return processed, errors.Join(errs...)
}
