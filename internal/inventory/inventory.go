// Package inventory holds the ordered set of items a session owns.
package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Sell pricing
const (
	SellRatio   = 0.5
	SellBaseFee = 50

	UsageBoostChance = 0.10
	UsageBoostMin    = 1
	UsageBoostSpan   = 5
)

// Creditor receives the payout of a sale
type Creditor interface {
	Earn(ctx context.Context, amount int64, reason string) error
}

// ChangeFunc is called after every mutation so derived rewards can be recomputed
type ChangeFunc func()

// Store is an ordered collection of owned items keyed by id.
// It is not safe for concurrent use; the owning session serialises access.
type Store struct {
	items    []domain.Item
	onChange ChangeFunc
	rnd      func() float64
}

// NewStore creates an empty store
func NewStore(onChange ChangeFunc) *Store {
	return &Store{
		items:    []domain.Item{},
		onChange: onChange,
		rnd:      utils.RandomFloat,
	}
}

// SellPrice is the payout for selling item: floor(totalEarnings * 0.5) + 50
func SellPrice(item domain.Item) int64 {
	return int64(float64(item.TotalEarnings)*SellRatio) + SellBaseFee
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the number of owned items
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a copy of the inventory in insertion order
func (s *Store) Items() []domain.Item {
	out := make([]domain.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Get returns a copy of the item with id
func (s *Store) Get(id string) (domain.Item, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Item{}, false
	}
	return s.items[i].Clone(), true
}

// Add appends item as owned
func (s *Store) Add(item domain.Item) error {
	if s.indexOf(item.ID) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.ID)
	}
	item = item.Clone()
	item.Owned = true
	s.items = append(s.items, item)
	s.changed()
	return nil
}

// Remove deletes the item with id and returns it
func (s *Store) Remove(id string) (domain.Item, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.changed()
	return removed, nil
}

func (s *Store) insertAt(i int, item domain.Item) {
	s.items = append(s.items, domain.Item{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
}

// Sell removes the item and credits its sell price. If the credit fails the
// item goes back to its original position.
func (s *Store) Sell(ctx context.Context, id string, to Creditor) (domain.Item, int64, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Item{}, 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	item := s.items[i]
	payout := SellPrice(item)
	s.items = append(s.items[:i], s.items[i+1:]...)

	if err := to.Earn(ctx, payout, "Sold "+item.Name); err != nil {
		s.insertAt(i, item)
		return domain.Item{}, 0, err
	}

	s.changed()
	return item, payout, nil
}

// RecordUsage increments the usage counter of an owned item. With a 10%
// chance the item becomes more popular and its daily earnings grow by 1-5.
func (s *Store) RecordUsage(id string) (domain.Item, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Item{}, false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	s.items[i].UsageCount++
	boosted := false
	if s.rnd() < UsageBoostChance {
		s.items[i].DailyEarnings += utils.ScaledInt(s.rnd(), UsageBoostMin, UsageBoostSpan)
		boosted = true
	}
	s.changed()
	return s.items[i].Clone(), boosted, nil
}

// Stats aggregates the inventory
func (s *Store) Stats() domain.InventoryStats {
	stats := domain.InventoryStats{
		Count:           len(s.items),
		RarityBreakdown: map[domain.Rarity]int{},
	}
	for _, r := range domain.Rarities {
		stats.RarityBreakdown[r] = 0
	}
	for _, it := range s.items {
		stats.TotalEarnings += it.TotalEarnings
		stats.DailyEarnings += it.DailyEarnings
		stats.RarityBreakdown[it.Rarity]++
	}
	return stats
}

// Clear empties the inventory
func (s *Store) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = []domain.Item{}
	s.changed()
}

// Restore replaces the contents with persisted items. Duplicate ids keep the
// first occurrence.
func (s *Store) Restore(items []domain.Item) {
	s.items = make([]domain.Item, 0, len(items))
	for _, it := range items {
		if s.indexOf(it.ID) >= 0 {
			continue
		}
		it = it.Clone()
		it.Owned = true
		s.items = append(s.items, it)
	}
	s.changed()
}
