package event

import (
	"time"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// Type-safe event constructors. Every event is tagged with the session it belongs to.

func newSessionEvent(eventType string, sessionID string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(eventType),
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeySessionID: sessionID,
		},
	}
}

// NewWalletConnectedEvent creates a wallet.connected event
func NewWalletConnectedEvent(sessionID string, state domain.WalletState) Event {
	return newSessionEvent(domain.EventTypeWalletConnected, sessionID, domain.WalletPayload{
		SessionID: sessionID,
		Address:   state.Address,
		Balance:   state.Balance,
		Timestamp: time.Now().Unix(),
	})
}

// NewWalletDisconnectedEvent creates a wallet.disconnected event
func NewWalletDisconnectedEvent(sessionID, address string) Event {
	return newSessionEvent(domain.EventTypeWalletDisconnected, sessionID, domain.WalletPayload{
		SessionID: sessionID,
		Address:   address,
		Timestamp: time.Now().Unix(),
	})
}

// NewBalanceEvent creates a kai.spent or kai.earned event
func NewBalanceEvent(eventType, sessionID string, amount int64, reason string, balance int64) Event {
	return newSessionEvent(eventType, sessionID, domain.BalancePayload{
		SessionID: sessionID,
		Amount:    amount,
		Reason:    reason,
		Balance:   balance,
		Timestamp: time.Now().Unix(),
	})
}

// NewPotionEvent creates one of the potion.* events
func NewPotionEvent(eventType, sessionID string, item domain.Item, value int64, boosted bool) Event {
	return newSessionEvent(eventType, sessionID, domain.PotionPayload{
		SessionID: sessionID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Rarity:    item.Rarity,
		Value:     value,
		Boosted:   boosted,
		Timestamp: time.Now().Unix(),
	})
}

// NewStakingEvent creates a kai.staked or kai.unstaked event
func NewStakingEvent(eventType, sessionID string, amount int64, ledger domain.Ledger, totalStaked int64) Event {
	return newSessionEvent(eventType, sessionID, domain.StakingPayload{
		SessionID:           sessionID,
		Amount:              amount,
		StakedKai:           ledger.StakedKai,
		WorldPoolPercentage: ledger.WorldPoolPercentage,
		WorldPoolShare:      ledger.WorldPoolShare,
		TotalKaiStaked:      totalStaked,
		Timestamp:           time.Now().Unix(),
	})
}

// NewRewardsEvent creates a rewards.claimed or rewards.accrued event
func NewRewardsEvent(eventType, sessionID string, kind domain.ClaimKind, amount, unclaimed int64) Event {
	return newSessionEvent(eventType, sessionID, domain.RewardsPayload{
		SessionID:        sessionID,
		Kind:             kind,
		Amount:           amount,
		UnclaimedRewards: unclaimed,
		Timestamp:        time.Now().Unix(),
	})
}

// NewSessionResetEvent creates a session.reset event
func NewSessionResetEvent(sessionID string) Event {
	return newSessionEvent(domain.EventTypeSessionReset, sessionID, domain.SessionPayload{
		SessionID: sessionID,
		Timestamp: time.Now().Unix(),
	})
}
