package domain

import "time"

// ClaimKind selects which reward bucket to pay out
type ClaimKind string

const (
	ClaimInventory ClaimKind = "inventory"
	ClaimWorldPool ClaimKind = "worldpool"
)

// Valid reports whether k is a known claim kind
func (k ClaimKind) Valid() bool {
	return k == ClaimInventory || k == ClaimWorldPool
}

// PoolStats are the global world pool totals shared by every session
type PoolStats struct {
	TotalKaiEarned int64 `json:"totalKaiEarned"`
	TotalKaiStaked int64 `json:"totalKaiStaked"`
	TotalPotions   int64 `json:"totalPotions"`
	ActiveUsers    int64 `json:"activeUsers"`
	DailyVolume    int64 `json:"dailyVolume"`
}

// DefaultPoolStats returns the seed totals of a fresh world pool
func DefaultPoolStats() PoolStats {
	return PoolStats{
		TotalKaiEarned: 1234567,
		TotalKaiStaked: 10000000,
		TotalPotions:   100000,
		ActiveUsers:    15420,
		DailyVolume:    50000,
	}
}

// Ledger is the per-session staking and accrual state.
// UnclaimedRewards is only changed by accrual and claims.
type Ledger struct {
	StakedKai           int64     `json:"stakedKai"`
	WorldPoolPercentage float64   `json:"worldPoolPercentage"`
	WorldPoolShare      int64     `json:"worldPoolShare"`
	UnclaimedRewards    int64     `json:"unclaimedRewards"`
	LastAccrualAt       time.Time `json:"lastAccrualAt"`
	AccrualRemainder    float64   `json:"accrualRemainder"`
}

// RewardSnapshot is the derived view of a session's earnings
type RewardSnapshot struct {
	TotalEarned         int64   `json:"totalEarned"`
	DailyExpected       int64   `json:"dailyExpected"`
	UnclaimedRewards    int64   `json:"unclaimedRewards"`
	WorldPoolShare      int64   `json:"worldPoolShare"`
	WorldPoolPercentage float64 `json:"worldPoolPercentage"`
	StakedKai           int64   `json:"stakedKai"`
}
