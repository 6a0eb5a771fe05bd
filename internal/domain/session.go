package domain

// Preferences are the display settings stored alongside a session
type Preferences struct {
	Theme      string `json:"theme"`
	Animations bool   `json:"animations"`
}

// AppState is opaque presentation state persisted per session
type AppState struct {
	CurrentTab  string      `json:"currentTab"`
	Timestamp   int64       `json:"timestamp"`
	Preferences Preferences `json:"preferences"`
}

// DefaultAppState is what a new session starts with
func DefaultAppState() AppState {
	return AppState{
		CurrentTab:  "worldpool",
		Preferences: Preferences{Theme: "dark", Animations: true},
	}
}

// SessionView is a read-only snapshot of everything a session owns
type SessionView struct {
	ID        string         `json:"id"`
	Wallet    WalletState    `json:"wallet"`
	Rewards   RewardSnapshot `json:"rewards"`
	Stats     InventoryStats `json:"stats"`
	Inventory []Item         `json:"inventory"`
	AppState  AppState       `json:"appState"`
}

// Snapshot keys used by the session store
const (
	SnapshotKeyWallet    = "wallet"
	SnapshotKeyInventory = "inventory"
	SnapshotKeyStaking   = "staking"
	SnapshotKeyAppState  = "app_state"
)

// SnapshotKeys lists every key a session persists
var SnapshotKeys = []string{SnapshotKeyWallet, SnapshotKeyInventory, SnapshotKeyStaking, SnapshotKeyAppState}
