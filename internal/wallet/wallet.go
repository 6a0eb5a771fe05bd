// Package wallet implements the mock KAI wallet a session trades with.
package wallet

import (
	"context"
	"fmt"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Publisher is the subset of event.Bus the wallet needs
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// Config sets the starting balance range handed out on connect.
// Rand defaults to utils.RandomFloat.
type Config struct {
	MinBalance  int64
	BalanceSpan int64
	Rand        func() float64
}

// Wallet is the balance and identity of one session.
// It is not safe for concurrent use; the owning session serialises access.
type Wallet struct {
	sessionID string
	state     domain.WalletState
	cfg       Config
	bus       Publisher

	rnd     func() float64
	address func() (string, error)
}

// New creates a disconnected wallet for sessionID
func New(sessionID string, cfg Config, bus Publisher) *Wallet {
	if cfg.MinBalance <= 0 {
		cfg.MinBalance = DefaultMinBalance
	}
	if cfg.BalanceSpan <= 0 {
		cfg.BalanceSpan = DefaultBalanceSpan
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Wallet{
		sessionID: sessionID,
		cfg:       cfg,
		bus:       bus,
		rnd:       rnd,
		address:   randomAddress,
	}
}

// Restore loads previously persisted state without firing events
func (w *Wallet) Restore(state domain.WalletState) {
	if state.Balance < 0 {
		state.Balance = 0
	}
	w.state = state
}

// State returns a copy of the current wallet state
func (w *Wallet) State() domain.WalletState {
	return w.state
}

// Connected reports whether the wallet is connected
func (w *Wallet) Connected() bool {
	return w.state.Connected
}

// Balance returns the current KAI balance
func (w *Wallet) Balance() int64 {
	return w.state.Balance
}

// Connect assigns an address and a starting balance. Connecting a connected
// wallet returns its existing identity unchanged and fires no event.
func (w *Wallet) Connect(ctx context.Context) (domain.WalletState, error) {
	if w.state.Connected {
		return w.state, nil
	}

	addr, err := w.address()
	if err != nil {
		return domain.WalletState{}, fmt.Errorf("%s: %w", ErrMsgAddressGeneration, err)
	}

	w.state = domain.WalletState{
		Connected: true,
		Address:   addr,
		Balance:   utils.ScaledInt(w.rnd(), w.cfg.MinBalance, w.cfg.BalanceSpan),
	}

	logger.FromContext(ctx).Info(LogMsgWalletConnected, "address", addr, "balance", w.state.Balance)
	w.publish(ctx, event.NewWalletConnectedEvent(w.sessionID, w.state))
	return w.state, nil
}

// Disconnect zeroes the balance and forgets the address. It reports whether
// the wallet was connected; disconnecting twice is a no-op.
func (w *Wallet) Disconnect(ctx context.Context) bool {
	if !w.state.Connected {
		return false
	}

	addr := w.state.Address
	w.state = domain.WalletState{}

	logger.FromContext(ctx).Info(LogMsgWalletDisconnected, "address", addr)
	w.publish(ctx, event.NewWalletDisconnectedEvent(w.sessionID, addr))
	return true
}

// CheckSpend validates a debit without applying it
func (w *Wallet) CheckSpend(amount int64) error {
	if !w.state.Connected {
		return domain.ErrNotConnected
	}
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if amount > w.state.Balance {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientBalance, amount, w.state.Balance)
	}
	return nil
}

// Spend debits amount. On error the balance is unchanged.
func (w *Wallet) Spend(ctx context.Context, amount int64, reason string) error {
	if err := w.CheckSpend(amount); err != nil {
		return err
	}
	w.state.Balance -= amount
	w.publish(ctx, event.NewBalanceEvent(domain.EventTypeKaiSpent, w.sessionID, amount, reason, w.state.Balance))
	return nil
}

// Earn credits amount. Credits are accepted while disconnected as well.
func (w *Wallet) Earn(ctx context.Context, amount int64, reason string) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if amount == 0 {
		return nil
	}
	w.state.Balance += amount
	w.publish(ctx, event.NewBalanceEvent(domain.EventTypeKaiEarned, w.sessionID, amount, reason, w.state.Balance))
	return nil
}

func (w *Wallet) publish(ctx context.Context, evt event.Event) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func randomAddress() (string, error) {
	h, err := utils.RandomHex(AddressBytes)
	if err != nil {
		return "", err
	}
	return AddressPrefix + h, nil
}
