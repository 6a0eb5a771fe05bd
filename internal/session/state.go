package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/inventory"
	"github.com/osse101/PotionCraft_Go/internal/wallet"
)

// state is everything one session owns. Access is serialised by the
// session's lock.
type state struct {
	id       string
	wallet   *wallet.Wallet
	inv      *inventory.Store
	ledger   domain.Ledger
	appState domain.AppState
	rewards  domain.RewardSnapshot
	outbox   *outbox
}

// outbox collects the events raised while an operation runs. They are
// published once the operation is persisted and dropped if it fails.
type outbox struct {
	events []event.Event
}

func (o *outbox) Publish(_ context.Context, evt event.Event) error {
	o.events = append(o.events, evt)
	return nil
}

func (o *outbox) take() []event.Event {
	evts := o.events
	o.events = nil
	return evts
}

// checkpoint is a copy of everything a session persists
type checkpoint struct {
	wallet   domain.WalletState
	items    []domain.Item
	ledger   domain.Ledger
	appState domain.AppState
}

func (s *service) newState(id string) *state {
	st := &state{
		id:       id,
		appState: domain.DefaultAppState(),
		outbox:   &outbox{},
	}
	st.wallet = wallet.New(id, s.walletConfig(), st.outbox)
	st.inv = inventory.NewStore(func() { s.refreshRewards(st) })
	s.refreshRewards(st)
	return st
}

func (s *service) walletConfig() wallet.Config {
	t := s.economy.Tuning().Wallet
	return wallet.Config{
		MinBalance:  t.MinBalance,
		BalanceSpan: t.BalanceSpan,
		Rand:        s.rnd,
	}
}

// refreshRewards recomputes the cached reward view. Called after every
// inventory change and ledger update.
func (s *service) refreshRewards(st *state) {
	if st.inv == nil {
		return
	}
	st.rewards = s.economy.ProjectedRewards(st.inv.Items(), st.ledger)
}

func (st *state) emit(evt event.Event) {
	st.outbox.events = append(st.outbox.events, evt)
}

func (st *state) checkpoint() checkpoint {
	return checkpoint{
		wallet:   st.wallet.State(),
		items:    st.inv.Items(),
		ledger:   st.ledger,
		appState: st.appState,
	}
}

func (st *state) view() domain.SessionView {
	return domain.SessionView{
		ID:        st.id,
		Wallet:    st.wallet.State(),
		Rewards:   st.rewards,
		Stats:     st.inv.Stats(),
		Inventory: st.inv.Items(),
		AppState:  st.appState,
	}
}

// encode renders the session as snapshot documents
func (st *state) encode() (map[string][]byte, error) {
	values := map[string]interface{}{
		domain.SnapshotKeyWallet:    st.wallet.State(),
		domain.SnapshotKeyInventory: st.inv.Items(),
		domain.SnapshotKeyStaking:   st.ledger,
		domain.SnapshotKeyAppState:  st.appState,
	}
	docs := make(map[string][]byte, len(values))
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgEncodeSnapshot, key, err)
		}
		docs[key] = raw
	}
	return docs, nil
}

// decodeInto restores persisted documents. Missing keys keep their defaults.
func (s *service) decodeInto(st *state, docs map[string][]byte) error {
	if raw, ok := docs[domain.SnapshotKeyWallet]; ok {
		var ws domain.WalletState
		if err := json.Unmarshal(raw, &ws); err != nil {
			return fmt.Errorf(ErrMsgDecodeSnapshot, domain.SnapshotKeyWallet, err)
		}
		st.wallet.Restore(ws)
	}
	if raw, ok := docs[domain.SnapshotKeyStaking]; ok {
		var ledger domain.Ledger
		if err := json.Unmarshal(raw, &ledger); err != nil {
			return fmt.Errorf(ErrMsgDecodeSnapshot, domain.SnapshotKeyStaking, err)
		}
		st.ledger = ledger
	}
	if raw, ok := docs[domain.SnapshotKeyAppState]; ok {
		var as domain.AppState
		if err := json.Unmarshal(raw, &as); err != nil {
			return fmt.Errorf(ErrMsgDecodeSnapshot, domain.SnapshotKeyAppState, err)
		}
		st.appState = as
	}
	if raw, ok := docs[domain.SnapshotKeyInventory]; ok {
		var items []domain.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf(ErrMsgDecodeSnapshot, domain.SnapshotKeyInventory, err)
		}
		st.inv.Restore(items)
	}
	s.refreshRewards(st)
	return nil
}
