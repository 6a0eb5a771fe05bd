package metrics

import (
	"context"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.AllTypes, e.HandleEvent)
}

// RecordHandlerError counts a failed delivery. Installed as the bus failure hook.
func (e *EventMetricsCollector) RecordHandlerError(_ context.Context, evt event.Event, _ error) {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
}

var potionActions = map[event.Type]string{
	domain.EventTypePotionCrafted:  ActionCrafted,
	domain.EventTypePotionObtained: ActionObtained,
	domain.EventTypePotionSold:     ActionSold,
	domain.EventTypePotionUsed:     ActionUsed,
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeKaiSpent, domain.EventTypeKaiEarned:
		var p domain.BalancePayload
		if p, err = event.DecodePayload[domain.BalancePayload](evt.Payload); err == nil {
			if evt.Type == domain.EventTypeKaiSpent {
				KaiSpent.Add(float64(p.Amount))
			} else {
				KaiEarned.Add(float64(p.Amount))
			}
		}

	case domain.EventTypePotionCrafted, domain.EventTypePotionObtained,
		domain.EventTypePotionSold, domain.EventTypePotionUsed:
		var p domain.PotionPayload
		if p, err = event.DecodePayload[domain.PotionPayload](evt.Payload); err == nil {
			Potions.WithLabelValues(potionActions[evt.Type], string(p.Rarity)).Inc()
			if p.Boosted {
				BoostedUses.Inc()
			}
		}

	case domain.EventTypeKaiStaked, domain.EventTypeKaiUnstaked:
		var p domain.StakingPayload
		if p, err = event.DecodePayload[domain.StakingPayload](evt.Payload); err == nil && p.TotalKaiStaked > 0 {
			WorldPoolStaked.Set(float64(p.TotalKaiStaked))
		}

	case domain.EventTypeRewardsClaimed, domain.EventTypeRewardsAccrued:
		var p domain.RewardsPayload
		if p, err = event.DecodePayload[domain.RewardsPayload](evt.Payload); err == nil {
			if evt.Type == domain.EventTypeRewardsClaimed {
				RewardsClaimed.WithLabelValues(string(p.Kind)).Add(float64(p.Amount))
			} else {
				RewardsAccrued.Add(float64(p.Amount))
			}
		}

	case domain.EventTypeWalletConnected:
		WalletTransitions.WithLabelValues(ActionConnected).Inc()

	case domain.EventTypeWalletDisconnected:
		WalletTransitions.WithLabelValues(ActionDisconnected).Inc()

	case domain.EventTypeSessionReset:
		SessionResets.Inc()
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
