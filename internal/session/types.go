package session

import (
	"encoding/json"
	"time"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// Config tunes session behaviour
type Config struct {
	// LatencyMin and LatencyMax bound the simulated delay applied inside
	// every mutating operation. A zero max disables the delay.
	LatencyMin time.Duration
	LatencyMax time.Duration
	// SeedSample hands a freshly connected wallet three sample potions and a stake
	SeedSample bool
}

// CraftRequest describes a potion to craft
type CraftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Style       string `json:"style"`
}

// Generation is the mock art produced by trying or using a potion
type Generation struct {
	ItemID     string    `json:"itemId"`
	Prompt     string    `json:"prompt"`
	Style      string    `json:"style"`
	Result     string    `json:"result"`
	Quality    string    `json:"quality"`
	Cost       int64     `json:"cost"`
	Boosted    bool      `json:"boosted"`
	UsageCount int64     `json:"usageCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Generation quality labels
const (
	QualityHigh    = "High Quality"
	QualityPreview = "Preview Quality"
)

// MinPromptLength is the shortest prompt accepted by Try and Use
const MinPromptLength = 5

// Sale is the outcome of selling a potion
type Sale struct {
	Item    domain.Item `json:"item"`
	Payout  int64       `json:"payout"`
	Balance int64       `json:"balance"`
}

// Unstaked is the outcome of unstaking
type Unstaked struct {
	Payout  int64                 `json:"payout"`
	Balance int64                 `json:"balance"`
	Rewards domain.RewardSnapshot `json:"rewards"`
}

// Claimed is the outcome of a reward claim
type Claimed struct {
	Kind    domain.ClaimKind      `json:"kind"`
	Amount  int64                 `json:"amount"`
	Balance int64                 `json:"balance"`
	Rewards domain.RewardSnapshot `json:"rewards"`
}

// bundle is the export format of a session
type bundle struct {
	Version    int                        `json:"version"`
	SessionID  string                     `json:"sessionId"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Snapshots  map[string]json.RawMessage `json:"snapshots"`
}
