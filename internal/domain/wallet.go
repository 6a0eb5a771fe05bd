package domain

// WalletState is the persisted shape of a mock wallet
type WalletState struct {
	Connected bool   `json:"isConnected"`
	Address   string `json:"address,omitempty"`
	Balance   int64  `json:"balance"`
}

// CanAfford reports whether the wallet is connected and holds at least amount
func (w WalletState) CanAfford(amount int64) bool {
	return w.Connected && w.Balance >= amount
}
