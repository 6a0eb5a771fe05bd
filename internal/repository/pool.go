package repository

import (
	"context"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// Pool persists the global world pool totals. Implementations apply each
// adjustment atomically so concurrent sessions never lose an update.
type Pool interface {
	GetPoolStats(ctx context.Context) (domain.PoolStats, error)
	// AdjustStaked adds delta (which may be negative) to the total staked
	// amount and returns the totals after the change. The total never drops below zero.
	AdjustStaked(ctx context.Context, delta int64) (domain.PoolStats, error)
}
