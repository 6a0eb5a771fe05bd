package sse

import (
	"context"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every domain event to the hub
func (s *Subscriber) Subscribe(ctx context.Context) {
	s.bus.Subscribe(event.AllTypes, s.handle)
	logger.FromContext(ctx).Info(LogMsgSubscriberReady, "types", domain.AllEventTypes)
}

func (s *Subscriber) handle(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.SessionID(), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
