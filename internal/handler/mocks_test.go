package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/session"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

var _ session.Service = (*MockSessionService)(nil)

func (m *MockSessionService) Open(ctx context.Context) (domain.SessionView, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (domain.SessionView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Reset(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) ActiveSessions() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockSessionService) Connect(ctx context.Context, sessionID string) (domain.SessionView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Disconnect(ctx context.Context, sessionID string) (domain.SessionView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Spend(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error) {
	args := m.Called(ctx, sessionID, amount, reason)
	return args.Get(0).(domain.WalletState), args.Error(1)
}

func (m *MockSessionService) Earn(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error) {
	args := m.Called(ctx, sessionID, amount, reason)
	return args.Get(0).(domain.WalletState), args.Error(1)
}

func (m *MockSessionService) CraftCost(name, description, style string) int64 {
	args := m.Called(name, description, style)
	return args.Get(0).(int64)
}

func (m *MockSessionService) ObtainCost(item domain.Item) int64 {
	args := m.Called(item)
	return args.Get(0).(int64)
}

func (m *MockSessionService) Craft(ctx context.Context, sessionID string, req session.CraftRequest) (domain.Item, error) {
	args := m.Called(ctx, sessionID, req)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockSessionService) Obtain(ctx context.Context, sessionID, catalogID string) (domain.Item, error) {
	args := m.Called(ctx, sessionID, catalogID)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockSessionService) Try(ctx context.Context, sessionID, itemID, prompt string) (session.Generation, error) {
	args := m.Called(ctx, sessionID, itemID, prompt)
	return args.Get(0).(session.Generation), args.Error(1)
}

func (m *MockSessionService) Use(ctx context.Context, sessionID, itemID, prompt string) (session.Generation, error) {
	args := m.Called(ctx, sessionID, itemID, prompt)
	return args.Get(0).(session.Generation), args.Error(1)
}

func (m *MockSessionService) Sell(ctx context.Context, sessionID, itemID string) (session.Sale, error) {
	args := m.Called(ctx, sessionID, itemID)
	return args.Get(0).(session.Sale), args.Error(1)
}

func (m *MockSessionService) Inventory(ctx context.Context, sessionID string) ([]domain.Item, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockSessionService) Stats(ctx context.Context, sessionID string) (domain.InventoryStats, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.InventoryStats), args.Error(1)
}

func (m *MockSessionService) Stake(ctx context.Context, sessionID string, amount int64) (domain.RewardSnapshot, error) {
	args := m.Called(ctx, sessionID, amount)
	return args.Get(0).(domain.RewardSnapshot), args.Error(1)
}

func (m *MockSessionService) Unstake(ctx context.Context, sessionID string) (session.Unstaked, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(session.Unstaked), args.Error(1)
}

func (m *MockSessionService) Claim(ctx context.Context, sessionID string, kind domain.ClaimKind) (session.Claimed, error) {
	args := m.Called(ctx, sessionID, kind)
	return args.Get(0).(session.Claimed), args.Error(1)
}

func (m *MockSessionService) Rewards(ctx context.Context, sessionID string) (domain.RewardSnapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.RewardSnapshot), args.Error(1)
}

func (m *MockSessionService) Accrue(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionService) AccrueAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionService) AppState(ctx context.Context, sessionID string) (domain.AppState, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockSessionService) SaveAppState(ctx context.Context, sessionID string, state domain.AppState) (domain.AppState, error) {
	args := m.Called(ctx, sessionID, state)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockSessionService) Export(ctx context.Context, sessionID string) ([]byte, error) {
	args := m.Called(ctx, sessionID)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Import(ctx context.Context, sessionID string, data []byte) (domain.SessionView, error) {
	args := m.Called(ctx, sessionID, data)
	return args.Get(0).(domain.SessionView), args.Error(1)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPinger mocks the readiness probe target
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
