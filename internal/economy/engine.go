// Package economy computes rewards, pays claims and moves KAI in and out of
// the shared world pool.
package economy

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/repository"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Account is the wallet surface the engine debits and credits
type Account interface {
	Connected() bool
	Spend(ctx context.Context, amount int64, reason string) error
	Earn(ctx context.Context, amount int64, reason string) error
}

// Service defines the interface for economy operations
type Service interface {
	Tuning() Tuning
	PoolStats(ctx context.Context) (domain.PoolStats, error)

	ProjectedRewards(items []domain.Item, ledger domain.Ledger) domain.RewardSnapshot
	RecomputeRewards(items []domain.Item, staked int64) domain.RewardSnapshot
	Accrue(ledger *domain.Ledger, items []domain.Item, now time.Time) int64

	Claimable(ledger domain.Ledger, kind domain.ClaimKind, account Account) (int64, error)
	Claim(ctx context.Context, ledger *domain.Ledger, kind domain.ClaimKind, account Account) (int64, error)
	Stake(ctx context.Context, ledger *domain.Ledger, amount int64, account Account) (domain.PoolStats, error)
	Unstake(ctx context.Context, ledger *domain.Ledger, account Account) (int64, domain.PoolStats, error)
	SeedStake(ctx context.Context, ledger *domain.Ledger, amount int64) error
	ReleaseStake(ctx context.Context, ledger *domain.Ledger) error
}

type service struct {
	pool   repository.Pool
	tuning Tuning
	rnd    func() float64
}

// NewService creates a new economy service
func NewService(pool repository.Pool, tuning Tuning) Service {
	return &service{
		pool:   pool,
		tuning: tuning,
		rnd:    utils.RandomFloat,
	}
}

func (s *service) Tuning() Tuning {
	return s.tuning
}

func (s *service) PoolStats(ctx context.Context) (domain.PoolStats, error) {
	stats, err := s.pool.GetPoolStats(ctx)
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf(ErrMsgPoolStatsFailed, err)
	}
	return stats, nil
}

func totals(items []domain.Item) (earned, daily int64) {
	for _, it := range items {
		earned += it.TotalEarnings
		daily += it.DailyEarnings
	}
	return earned, daily
}

// ProjectedRewards derives the reward view from the inventory and ledger
// without touching either.
func (s *service) ProjectedRewards(items []domain.Item, ledger domain.Ledger) domain.RewardSnapshot {
	earned, daily := totals(items)
	return domain.RewardSnapshot{
		TotalEarned:         earned,
		DailyExpected:       int64(math.Floor(float64(daily) + s.tuning.StakingDaily(ledger.StakedKai))),
		UnclaimedRewards:    ledger.UnclaimedRewards,
		WorldPoolShare:      ledger.WorldPoolShare,
		WorldPoolPercentage: ledger.WorldPoolPercentage,
		StakedKai:           ledger.StakedKai,
	}
}

// RecomputeRewards draws a fresh random unclaimed amount on every call.
// Only used to give a newly connected sample wallet something to claim.
func (s *service) RecomputeRewards(items []domain.Item, staked int64) domain.RewardSnapshot {
	earned, daily := totals(items)
	stakingDaily := s.tuning.StakingDaily(staked)

	var unclaimed int64
	for _, it := range items {
		unclaimed += int64(math.Floor(s.rnd() * float64(it.DailyEarnings)))
	}
	if staked > 0 {
		horizon := stakingDaily * float64(s.tuning.UnclaimedHorizonDays)
		unclaimed += int64(math.Floor(s.rnd() * horizon))
	}

	return domain.RewardSnapshot{
		TotalEarned:      earned,
		DailyExpected:    int64(math.Floor(float64(daily) + stakingDaily)),
		UnclaimedRewards: unclaimed,
		StakedKai:        staked,
	}
}

// Accrue credits the rewards earned since the last accrual and returns the
// whole KAI added. Fractions are carried in the ledger so that many short
// intervals add up to the same total as one long one.
func (s *service) Accrue(ledger *domain.Ledger, items []domain.Item, now time.Time) int64 {
	if ledger.LastAccrualAt.IsZero() {
		ledger.LastAccrualAt = now
		return 0
	}
	elapsed := now.Sub(ledger.LastAccrualAt)
	if elapsed <= 0 {
		return 0
	}

	_, daily := totals(items)
	perDay := float64(daily) + s.tuning.StakingDaily(ledger.StakedKai)
	exact := perDay*elapsed.Hours()/24 + ledger.AccrualRemainder
	whole := math.Floor(exact)

	ledger.UnclaimedRewards += int64(whole)
	ledger.AccrualRemainder = exact - whole
	ledger.LastAccrualAt = now
	return int64(whole)
}

// Claimable reports what Claim would pay without paying it
func (s *service) Claimable(ledger domain.Ledger, kind domain.ClaimKind, account Account) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidClaimKind, kind)
	}
	if !account.Connected() {
		return 0, domain.ErrNotConnected
	}

	amount := ledger.UnclaimedRewards
	if kind == domain.ClaimWorldPool {
		amount = ledger.WorldPoolShare
	}
	if amount <= 0 {
		return 0, domain.ErrNothingToClaim
	}
	return amount, nil
}

// Claim pays out one reward bucket. The bucket is only zeroed once the
// credit has gone through.
func (s *service) Claim(ctx context.Context, ledger *domain.Ledger, kind domain.ClaimKind, account Account) (int64, error) {
	amount, err := s.Claimable(*ledger, kind, account)
	if err != nil {
		return 0, err
	}

	reason := ReasonClaimInventory
	if kind == domain.ClaimWorldPool {
		reason = ReasonClaimWorldPool
	}
	if err := account.Earn(ctx, amount, reason); err != nil {
		return 0, err
	}
	if kind == domain.ClaimInventory {
		ledger.UnclaimedRewards = 0
	} else {
		ledger.WorldPoolShare = 0
	}

	logger.FromContext(ctx).Info(LogMsgClaimed, "kind", kind, "amount", amount)
	return amount, nil
}

// Stake locks amount KAI into the world pool
func (s *service) Stake(ctx context.Context, ledger *domain.Ledger, amount int64, account Account) (domain.PoolStats, error) {
	log := logger.FromContext(ctx)
	if amount <= 0 {
		return domain.PoolStats{}, domain.ErrInvalidAmount
	}
	if err := account.Spend(ctx, amount, ReasonStake); err != nil {
		return domain.PoolStats{}, err
	}

	stats, err := s.pool.AdjustStaked(ctx, amount)
	if err != nil {
		log.Error(LogMsgPoolRollback, "amount", amount, "error", err)
		if refundErr := account.Earn(ctx, amount, ReasonStakeRefund); refundErr != nil {
			return domain.PoolStats{}, fmt.Errorf(ErrMsgRefundFailed, refundErr)
		}
		return domain.PoolStats{}, fmt.Errorf(ErrMsgAdjustPoolFailed, err)
	}

	ledger.StakedKai += amount
	s.applyShare(ledger, stats)
	log.Info(LogMsgStaked, "amount", amount, "staked", ledger.StakedKai, "percentage", ledger.WorldPoolPercentage)
	return stats, nil
}

// applyShare recomputes the ledger's slice of the pool from the current totals
func (s *service) applyShare(ledger *domain.Ledger, stats domain.PoolStats) {
	if stats.TotalKaiStaked <= 0 {
		ledger.WorldPoolPercentage = 0
		ledger.WorldPoolShare = 0
		return
	}
	ledger.WorldPoolPercentage = utils.Percentage(ledger.StakedKai, stats.TotalKaiStaked)
	ledger.WorldPoolShare = int64(math.Floor(float64(stats.TotalKaiEarned) * float64(ledger.StakedKai) / float64(stats.TotalKaiStaked)))
}

// Unstake returns the stake plus the accumulated world pool share. The pool
// is adjusted first; if that fails nothing is paid and the ledger is kept.
func (s *service) Unstake(ctx context.Context, ledger *domain.Ledger, account Account) (int64, domain.PoolStats, error) {
	if ledger.StakedKai <= 0 {
		return 0, domain.PoolStats{}, domain.ErrNothingStaked
	}

	log := logger.FromContext(ctx)
	staked := ledger.StakedKai
	payout := staked + ledger.WorldPoolShare
	stats, err := s.pool.AdjustStaked(ctx, -staked)
	if err != nil {
		return 0, domain.PoolStats{}, fmt.Errorf(ErrMsgAdjustPoolFailed, err)
	}
	if err := account.Earn(ctx, payout, ReasonUnstake); err != nil {
		if _, undoErr := s.pool.AdjustStaked(ctx, staked); undoErr != nil {
			log.Error(LogMsgPoolRestoreFailed, "amount", staked, "error", undoErr)
		}
		return 0, domain.PoolStats{}, err
	}

	clearStake(ledger)
	log.Info(LogMsgUnstaked, "payout", payout)
	return payout, stats, nil
}

// SeedStake registers a stake that did not come from the wallet, as used for
// the sample inventory handed out on first connect.
func (s *service) SeedStake(ctx context.Context, ledger *domain.Ledger, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	stats, err := s.pool.AdjustStaked(ctx, amount)
	if err != nil {
		return fmt.Errorf(ErrMsgAdjustPoolFailed, err)
	}
	ledger.StakedKai += amount
	s.applyShare(ledger, stats)
	return nil
}

// ReleaseStake hands a ledger's stake back to the pool totals without paying
// the wallet. Used on disconnect and reset.
func (s *service) ReleaseStake(ctx context.Context, ledger *domain.Ledger) error {
	staked := ledger.StakedKai
	if staked <= 0 {
		clearStake(ledger)
		return nil
	}
	if _, err := s.pool.AdjustStaked(ctx, -staked); err != nil {
		return fmt.Errorf(ErrMsgAdjustPoolFailed, err)
	}
	clearStake(ledger)
	logger.FromContext(ctx).Info(LogMsgStakeReleased, "amount", staked)
	return nil
}

func clearStake(ledger *domain.Ledger) {
	ledger.StakedKai = 0
	ledger.WorldPoolPercentage = 0
	ledger.WorldPoolShare = 0
}
