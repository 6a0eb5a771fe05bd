package session

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

func (s *service) CraftCost(name, description, style string) int64 {
	return s.economy.Tuning().CraftCost(strings.TrimSpace(name), strings.TrimSpace(description), style)
}

func (s *service) ObtainCost(item domain.Item) int64 {
	return s.economy.Tuning().ObtainCost(item)
}

// craftTags starts with the chosen style and adds every vocabulary tag
// mentioned in the name or description, up to max
func craftTags(name, description, style string, max int) []string {
	first := style
	if first == "" {
		first = defaultCraftTag
	}
	tags := []string{first}
	text := strings.ToLower(name + " " + description)
	for _, tag := range catalog.ArtTags {
		if len(tags) >= max {
			break
		}
		if tag != first && strings.Contains(text, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// addPaid adds an item that has already been paid for. If the inventory
// rejects it the payment is refunded before returning.
func (s *service) addPaid(ctx context.Context, st *state, item domain.Item, cost int64) error {
	if err := st.inv.Add(item); err != nil {
		if refundErr := st.wallet.Earn(ctx, cost, "Refund "+item.Name); refundErr != nil {
			logger.FromContext(ctx).Error(LogMsgRefundFailed, "item_id", item.ID, "error", refundErr)
		}
		return err
	}
	return nil
}

// Craft creates a new common potion owned by the session
func (s *service) Craft(ctx context.Context, sessionID string, req CraftRequest) (domain.Item, error) {
	tuning := s.economy.Tuning().Craft
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	style := strings.TrimSpace(req.Style)

	if name == "" {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if utf8.RuneCountInString(name) < tuning.MinNameLength {
		return domain.Item{}, fmt.Errorf("%w: "+ErrMsgNameTooShortFmt, domain.ErrInvalidInput, tuning.MinNameLength)
	}
	cost := s.CraftCost(name, description, style)

	var crafted domain.Item
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if err := st.wallet.CheckSpend(cost); err != nil {
			return err
		}
		s.delay()
		s.settle(ctx, st)

		item := domain.Item{
			ID:            CraftedIDPrefix + s.newID(),
			Name:          name,
			VisualStyle:   catalog.RandomStyle(s.rnd()),
			Tags:          craftTags(name, description, style, tuning.MaxTags),
			Rarity:        domain.RarityCommon,
			DailyEarnings: utils.ScaledInt(s.rnd(), tuning.DailyEarningsMin, tuning.DailyEarningsSpan),
			CreatedAt:     s.now(),
			Creator:       st.wallet.State().Address,
			Owned:         true,
			Description:   description,
		}

		if err := st.wallet.Spend(ctx, cost, fmt.Sprintf(ReasonCraftFormat, name)); err != nil {
			return err
		}
		if err := s.addPaid(ctx, st, item, cost); err != nil {
			return err
		}

		crafted = item
		logger.FromContext(ctx).Info(LogMsgPotionCrafted, "item_id", item.ID, "cost", cost)
		st.emit(event.NewPotionEvent(domain.EventTypePotionCrafted, st.id, item, cost, false))
		return nil
	})
	return crafted, err
}

// Obtain buys a copy of a world pool item. The copy starts with no earnings.
func (s *service) Obtain(ctx context.Context, sessionID, catalogID string) (domain.Item, error) {
	source, err := s.catalog.Lookup(catalogID)
	if err != nil {
		return domain.Item{}, err
	}
	cost := s.ObtainCost(source)

	var obtained domain.Item
	err = s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if err := st.wallet.CheckSpend(cost); err != nil {
			return err
		}
		s.delay()
		s.settle(ctx, st)

		item := source.Clone()
		item.ID = ObtainedIDPrefix + s.newID()
		item.Owned = true
		item.TotalEarnings = 0

		if err := st.wallet.Spend(ctx, cost, fmt.Sprintf(ReasonObtainFormat, item.Name)); err != nil {
			return err
		}
		if err := s.addPaid(ctx, st, item, cost); err != nil {
			return err
		}

		obtained = item
		logger.FromContext(ctx).Info(LogMsgPotionObtained, "item_id", item.ID, "source_id", catalogID, "cost", cost)
		st.emit(event.NewPotionEvent(domain.EventTypePotionObtained, st.id, item, cost, false))
		return nil
	})
	return obtained, err
}

func validatePrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if utf8.RuneCountInString(prompt) < MinPromptLength {
		return "", fmt.Errorf("%w: prompt must be at least %d characters", domain.ErrInvalidInput, MinPromptLength)
	}
	return prompt, nil
}

// Try runs a prompt through a potion. Owned potions are free and count as a
// use; anything else from the world pool costs the try fee.
func (s *service) Try(ctx context.Context, sessionID, itemID, prompt string) (Generation, error) {
	prompt, err := validatePrompt(prompt)
	if err != nil {
		return Generation{}, err
	}

	var gen Generation
	err = s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if _, owned := st.inv.Get(itemID); owned {
			var useErr error
			gen, useErr = s.use(ctx, st, itemID, prompt)
			return useErr
		}

		item, err := s.catalog.Lookup(itemID)
		if err != nil {
			return err
		}
		cost := s.economy.Tuning().TryCost
		if err := st.wallet.CheckSpend(cost); err != nil {
			return err
		}
		s.delay()
		if err := st.wallet.Spend(ctx, cost, fmt.Sprintf(ReasonTryFormat, item.Name)); err != nil {
			return err
		}

		gen = s.generate(item, prompt, QualityPreview)
		gen.Cost = cost
		return nil
	})
	return gen, err
}

// Use runs a prompt through an owned potion
func (s *service) Use(ctx context.Context, sessionID, itemID, prompt string) (Generation, error) {
	prompt, err := validatePrompt(prompt)
	if err != nil {
		return Generation{}, err
	}

	var gen Generation
	err = s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		var useErr error
		gen, useErr = s.use(ctx, st, itemID, prompt)
		return useErr
	})
	return gen, err
}

func (s *service) use(ctx context.Context, st *state, itemID, prompt string) (Generation, error) {
	if _, ok := st.inv.Get(itemID); !ok {
		return Generation{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	s.delay()
	s.settle(ctx, st)

	item, boosted, err := st.inv.RecordUsage(itemID)
	if err != nil {
		return Generation{}, err
	}

	gen := s.generate(item, prompt, QualityHigh)
	gen.Boosted = boosted
	gen.UsageCount = item.UsageCount

	logger.FromContext(ctx).Info(LogMsgPotionUsed, "item_id", itemID, "boosted", boosted)
	st.emit(event.NewPotionEvent(domain.EventTypePotionUsed, st.id, item, 0, boosted))
	return gen, nil
}

func (s *service) generate(item domain.Item, prompt, quality string) Generation {
	return Generation{
		ItemID:     item.ID,
		Prompt:     prompt,
		Style:      item.VisualStyle,
		Result:     catalog.RandomStyle(s.rnd()),
		Quality:    quality,
		UsageCount: item.UsageCount,
		CreatedAt:  s.now(),
	}
}

// Sell removes an owned potion and credits its sell price
func (s *service) Sell(ctx context.Context, sessionID, itemID string) (Sale, error) {
	var sale Sale
	err := s.mutate(ctx, sessionID, func(ctx context.Context, st *state) error {
		if _, ok := st.inv.Get(itemID); !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		s.delay()
		s.settle(ctx, st)

		item, payout, err := st.inv.Sell(ctx, itemID, st.wallet)
		if err != nil {
			return err
		}

		sale = Sale{Item: item, Payout: payout, Balance: st.wallet.Balance()}
		logger.FromContext(ctx).Info(LogMsgPotionSold, "item_id", itemID, "payout", payout)
		st.emit(event.NewPotionEvent(domain.EventTypePotionSold, st.id, item, payout, false))
		return nil
	})
	return sale, err
}

func (s *service) Inventory(ctx context.Context, sessionID string) ([]domain.Item, error) {
	var items []domain.Item
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		items = st.inv.Items()
		return nil
	})
	return items, err
}

func (s *service) Stats(ctx context.Context, sessionID string) (domain.InventoryStats, error) {
	var stats domain.InventoryStats
	err := s.read(ctx, sessionID, func(_ context.Context, st *state) error {
		stats = st.inv.Stats()
		return nil
	})
	return stats, err
}
