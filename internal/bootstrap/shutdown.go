package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/repository"
	"github.com/osse101/PotionCraft_Go/internal/server"
	"github.com/osse101/PotionCraft_Go/internal/session"
	"github.com/osse101/PotionCraft_Go/internal/sse"
	"github.com/osse101/PotionCraft_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server         *server.Server
	AccrualWorker  *worker.AccrualWorker
	WorkerPool     *worker.Pool
	Hub            *sse.Hub
	SessionService session.Service
	Store          repository.Store
	DeadLetter     *event.DeadLetterWriter
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Accrual worker and its pool (no more background ticks)
// 3. SSE hub (disconnect streaming clients)
// 4. Session service (persist live sessions)
// 5. Storage and the dead-letter log
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.AccrualWorker != nil {
		if err := c.AccrualWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAccrualWorkerFailed, "error", err)
		}
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.SessionService != nil {
		shutdownService(ctx, ServiceNameSession, c.SessionService)
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventSystem)
	if c.DeadLetter != nil {
		if err := c.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
