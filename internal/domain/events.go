package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "potion.sold")
const (
	EventTypeWalletConnected    = "wallet.connected"
	EventTypeWalletDisconnected = "wallet.disconnected"

	// EventTypeKaiSpent is published after a successful wallet debit
	EventTypeKaiSpent = "kai.spent"
	// EventTypeKaiEarned is published after a wallet credit
	EventTypeKaiEarned = "kai.earned"

	EventTypePotionCrafted  = "potion.crafted"
	EventTypePotionObtained = "potion.obtained"
	EventTypePotionSold     = "potion.sold"
	EventTypePotionUsed     = "potion.used"

	EventTypeKaiStaked   = "kai.staked"
	EventTypeKaiUnstaked = "kai.unstaked"

	EventTypeRewardsClaimed = "rewards.claimed"
	// EventTypeRewardsAccrued is published by the accrual worker, not by user actions
	EventTypeRewardsAccrued = "rewards.accrued"

	EventTypeSessionReset = "session.reset"
)

// AllEventTypes lists every event the engine publishes
var AllEventTypes = []string{
	EventTypeWalletConnected,
	EventTypeWalletDisconnected,
	EventTypeKaiSpent,
	EventTypeKaiEarned,
	EventTypePotionCrafted,
	EventTypePotionObtained,
	EventTypePotionSold,
	EventTypePotionUsed,
	EventTypeKaiStaked,
	EventTypeKaiUnstaked,
	EventTypeRewardsClaimed,
	EventTypeRewardsAccrued,
	EventTypeSessionReset,
}
