package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/PotionCraft_Go/internal/config"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/metrics"
)

// EventSystem is the in-process bus plus the sink for deliveries that failed
type EventSystem struct {
	Bus        *event.MemoryBus
	DeadLetter *event.DeadLetterWriter
	Metrics    *metrics.EventMetricsCollector
}

// InitializeEventSystem creates the event bus and the dead-letter log.
// Every failed delivery is counted and appended to the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	dlw, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDeadLetter, err)
	}

	collector := metrics.NewEventMetricsCollector()
	writeDeadLetter := dlw.Hook()

	bus := event.NewMemoryBus()
	bus.OnFailure(func(ctx context.Context, evt event.Event, err error) {
		collector.RecordHandlerError(ctx, evt, err)
		writeDeadLetter(ctx, evt, err)
	})

	slog.Info(LogMsgEventSystemInitialized, "deadletter_path", cfg.DeadLetterPath)

	return &EventSystem{Bus: bus, DeadLetter: dlw, Metrics: collector}, nil
}
