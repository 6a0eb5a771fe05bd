package economy

import (
	"unicode/utf8"

	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// CraftCost prices a craft request. Longer names and descriptions cost more,
// as does picking one of the premium style tags.
func (t Tuning) CraftCost(name, description, style string) int64 {
	cost := t.Craft.BaseCost
	if utf8.RuneCountInString(name) > t.Craft.LongNameLength {
		cost += t.Craft.LongNameSurcharge
	}
	if utf8.RuneCountInString(description) > t.Craft.LongDescLength {
		cost += t.Craft.LongDescSurcharge
	}
	if idx := catalog.TagIndex(style); idx >= 0 && idx < t.Craft.PremiumStyleCount {
		cost += t.Craft.PremiumStyleSurcharge
	}
	return cost
}

// ObtainCost prices a copy of a world pool item by rarity and popularity
func (t Tuning) ObtainCost(item domain.Item) int64 {
	mult, ok := t.Obtain.RarityMultipliers[item.Rarity]
	if !ok {
		mult = 1
	}
	cost := t.Obtain.BasePrice * mult
	if t.Obtain.UsageDivisor > 0 {
		cost += item.UsageCount / t.Obtain.UsageDivisor
	}
	return cost
}

// StakingDaily is the daily reward produced by staked KAI
func (t Tuning) StakingDaily(staked int64) float64 {
	if staked <= 0 {
		return 0
	}
	return float64(staked) * t.StakingAPY / daysPerYear
}
