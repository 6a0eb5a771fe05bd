package domain

// WalletPayload is the event payload for wallet.connected and wallet.disconnected
type WalletPayload struct {
	SessionID string `json:"session_id"`
	Address   string `json:"address,omitempty"`
	Balance   int64  `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// BalancePayload is the event payload for kai.spent and kai.earned
type BalancePayload struct {
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
	Balance   int64  `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// PotionPayload is the event payload for potion.* events
type PotionPayload struct {
	SessionID string `json:"session_id"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Rarity    Rarity `json:"rarity"`
	Value     int64  `json:"value"` // cost paid or payout received
	Boosted   bool   `json:"boosted,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// StakingPayload is the event payload for kai.staked and kai.unstaked
type StakingPayload struct {
	SessionID           string  `json:"session_id"`
	Amount              int64   `json:"amount"`
	StakedKai           int64   `json:"staked_kai"`
	WorldPoolPercentage float64 `json:"world_pool_percentage"`
	WorldPoolShare      int64   `json:"world_pool_share"`
	TotalKaiStaked      int64   `json:"total_kai_staked"`
	Timestamp           int64   `json:"timestamp"`
}

// RewardsPayload is the event payload for rewards.claimed and rewards.accrued
type RewardsPayload struct {
	SessionID        string    `json:"session_id"`
	Kind             ClaimKind `json:"kind,omitempty"`
	Amount           int64     `json:"amount"`
	UnclaimedRewards int64     `json:"unclaimed_rewards"`
	Timestamp        int64     `json:"timestamp"`
}

// SessionPayload is the event payload for session.reset
type SessionPayload struct {
	SessionID string `json:"session_id"`
	Timestamp int64  `json:"timestamp"`
}
