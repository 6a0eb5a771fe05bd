package session

import (
	"context"
	"fmt"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Connect connects the session's wallet. A connected wallet is returned as is.
func (s *service) Connect(ctx context.Context, sessionID string) (domain.SessionView, error) {
	var view domain.SessionView
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if st.wallet.Connected() {
			view = st.view()
			return nil
		}

		s.delay()
		if _, err := st.wallet.Connect(ctx); err != nil {
			return err
		}
		st.ledger.LastAccrualAt = s.now()

		if s.cfg.SeedSample {
			if err := s.seedSample(ctx, st); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgSeedSample, err)
			}
		}
		s.refreshRewards(st)
		view = st.view()
		return nil
	})
	return view, err
}

// seedSample hands a new wallet a few potions, a stake and a random amount
// of unclaimed rewards to play with
func (s *service) seedSample(ctx context.Context, st *state) error {
	t := s.economy.Tuning().Sample
	for n := 1; n <= t.Items; n++ {
		item := s.catalog.GenerateItem(fmt.Sprintf(sampleSeedFormat, st.id, n))
		item.ID = fmt.Sprintf(SampleIDFormat, n)
		item.Images = nil
		item.DailyEarnings = utils.ScaledInt(s.rnd(), t.DailyEarningsMin, t.DailyEarningsSpan)
		item.TotalEarnings = utils.ScaledInt(s.rnd(), t.TotalEarningsMin, t.TotalEarningsSpan)
		if err := st.inv.Add(item); err != nil {
			return err
		}
	}

	if stake := utils.ScaledInt(s.rnd(), t.StakeMin, t.StakeSpan); stake > 0 {
		if err := s.economy.SeedStake(ctx, &st.ledger, stake); err != nil {
			return err
		}
	}

	initial := s.economy.RecomputeRewards(st.inv.Items(), st.ledger.StakedKai)
	st.ledger.UnclaimedRewards = initial.UnclaimedRewards
	return nil
}

// Disconnect releases the stake, clears the inventory and disconnects the
// wallet. Disconnecting a disconnected wallet changes nothing.
func (s *service) Disconnect(ctx context.Context, sessionID string) (domain.SessionView, error) {
	var view domain.SessionView
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if !st.wallet.Connected() {
			view = st.view()
			return nil
		}

		if err := s.economy.ReleaseStake(ctx, &st.ledger); err != nil {
			return err
		}
		st.ledger = domain.Ledger{}
		st.inv.Clear()
		st.wallet.Disconnect(ctx)
		s.refreshRewards(st)
		view = st.view()
		return nil
	})
	return view, err
}

func (s *service) Spend(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error) {
	var out domain.WalletState
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if err := st.wallet.CheckSpend(amount); err != nil {
			return err
		}
		s.delay()
		if err := st.wallet.Spend(ctx, amount, reason); err != nil {
			return err
		}
		out = st.wallet.State()
		return nil
	})
	return out, err
}

func (s *service) Earn(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error) {
	var out domain.WalletState
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if amount < 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
		}
		s.delay()
		if err := st.wallet.Earn(ctx, amount, reason); err != nil {
			return err
		}
		out = st.wallet.State()
		return nil
	})
	return out, err
}
