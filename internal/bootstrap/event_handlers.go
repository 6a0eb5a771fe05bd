package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PotionCraft_Go/internal/sse"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - SSE subscriber (pushes events to connected clients)
func RegisterEventHandlers(ctx context.Context, events *EventSystem, hub *sse.Hub) {
	events.Metrics.Register(events.Bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, events.Bus).Subscribe(ctx)
	slog.Info(LogMsgEventStreamSubscribed)
}
