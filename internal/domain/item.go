package domain

import "time"

// Rarity is the collectible tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier from most to least common
var Rarities = []Rarity{RarityCommon, RarityRare, RarityLegendary}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityLegendary:
		return true
	}
	return false
}

// ItemImage is one of the decorative sub-images attached to an item
type ItemImage struct {
	ID    string `json:"id"`
	Glyph string `json:"emoji"`
	Alt   string `json:"alt"`
}

// Item is a collectible potion, either in the world pool or owned by a session.
// TotalEarnings and UsageCount only ever grow for an owned instance.
type Item struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	VisualStyle   string      `json:"style"`
	Tags          []string    `json:"tags"`
	Images        []ItemImage `json:"images,omitempty"`
	Rarity        Rarity      `json:"rarity"`
	DailyEarnings int64       `json:"dailyEarnings"`
	TotalEarnings int64       `json:"totalEarnings"`
	UsageCount    int64       `json:"usageCount"`
	CreatedAt     time.Time   `json:"createdAt"`
	Creator       string      `json:"creator"`
	Owned         bool        `json:"owned"`
	Description   string      `json:"description,omitempty"`
}

// Clone returns a deep copy so callers can mutate slices freely
func (i Item) Clone() Item {
	out := i
	out.Tags = append([]string(nil), i.Tags...)
	if i.Images != nil {
		out.Images = append([]ItemImage(nil), i.Images...)
	}
	return out
}

// InventoryStats aggregates an inventory
type InventoryStats struct {
	Count           int            `json:"count"`
	TotalEarnings   int64          `json:"totalEarnings"`
	DailyEarnings   int64          `json:"dailyEarnings"`
	RarityBreakdown map[Rarity]int `json:"rarityBreakdown"`
}
