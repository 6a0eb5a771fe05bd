package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PotionCraft_Go/internal/bootstrap"
	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/config"
	"github.com/osse101/PotionCraft_Go/internal/economy"
	"github.com/osse101/PotionCraft_Go/internal/server"
	"github.com/osse101/PotionCraft_Go/internal/session"
	"github.com/osse101/PotionCraft_Go/internal/sse"
	"github.com/osse101/PotionCraft_Go/internal/validation"
	"github.com/osse101/PotionCraft_Go/internal/worker"
)

// accrual jobs queued per worker before ticks start being skipped
const jobsPerWorker = 16

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tuning, err := economy.LoadTuning(cfg.EconomyConfig, cfg.EconomySchema, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(ctx, events, hub)

	econ := economy.NewService(store, tuning)
	cat := catalog.NewGenerator(catalog.Config{
		Size:      cfg.CatalogSize,
		Seed:      cfg.CatalogSeed,
		CacheSize: cfg.CatalogCacheSize,
		CacheTTL:  cfg.CatalogCacheTTL,
	})
	sessions := session.NewService(store, econ, cat, events.Bus, session.Config{
		LatencyMin: cfg.SimulatedLatencyMin,
		LatencyMax: cfg.SimulatedLatencyMax,
		SeedSample: cfg.SeedSampleInventory,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerCount*jobsPerWorker)
	pool.Start(ctx)
	accrual := worker.NewAccrualWorker(sessions, pool, cfg.AccrualInterval)
	accrual.Start(ctx)

	srv := server.NewServer(
		server.Config{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			ServiceName:    cfg.ServiceName,
			Version:        cfg.Version,
		},
		server.Dependencies{
			Store:    store,
			Sessions: sessions,
			Economy:  econ,
			Catalog:  cat,
			Hub:      hub,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		AccrualWorker:  accrual,
		WorkerPool:     pool,
		Hub:            hub,
		SessionService: sessions,
		Store:          store,
		DeadLetter:     events.DeadLetter,
	})
	return err
}
