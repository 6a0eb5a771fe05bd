package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// MockPool implements repository.Pool for testing
type MockPool struct {
	mock.Mock
}

func (m *MockPool) GetPoolStats(ctx context.Context) (domain.PoolStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PoolStats), args.Error(1)
}

func (m *MockPool) AdjustStaked(ctx context.Context, delta int64) (domain.PoolStats, error) {
	args := m.Called(ctx, delta)
	return args.Get(0).(domain.PoolStats), args.Error(1)
}

// fakeAccount is a minimal in-memory wallet
type fakeAccount struct {
	connected bool
	balance   int64
	earnErr   error
}

func (a *fakeAccount) Connected() bool { return a.connected }

func (a *fakeAccount) Spend(_ context.Context, amount int64, _ string) error {
	if !a.connected {
		return domain.ErrNotConnected
	}
	if amount > a.balance {
		return domain.ErrInsufficientBalance
	}
	a.balance -= amount
	return nil
}

func (a *fakeAccount) Earn(_ context.Context, amount int64, _ string) error {
	if a.earnErr != nil {
		return a.earnErr
	}
	a.balance += amount
	return nil
}

func newTestService(pool *MockPool) *service {
	svc := NewService(pool, DefaultTuning()).(*service)
	svc.rnd = func() float64 { return 0.5 }
	return svc
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "a", DailyEarnings: 20, TotalEarnings: 1000, Rarity: domain.RarityCommon},
		{ID: "b", DailyEarnings: 50, TotalEarnings: 500, Rarity: domain.RarityRare},
	}
}

func statsWithStaked(staked int64) domain.PoolStats {
	s := domain.DefaultPoolStats()
	s.TotalKaiStaked = staked
	return s
}
