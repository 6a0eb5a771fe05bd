package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/PotionCraft_Go/internal/config"
	"github.com/osse101/PotionCraft_Go/internal/database"
	"github.com/osse101/PotionCraft_Go/internal/database/memory"
	"github.com/osse101/PotionCraft_Go/internal/database/postgres"
	"github.com/osse101/PotionCraft_Go/internal/database/sqlite"
	"github.com/osse101/PotionCraft_Go/internal/repository"
)

// OpenStore builds the storage backend selected by cfg.StorageDriver.
// SQL backends are migrated before they are returned.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var (
		store repository.Store
		err   error
	)

	switch cfg.StorageDriver {
	case database.DriverMemory:
		store = memory.NewStore()

	case database.DriverPostgres:
		pool, perr := database.NewPool(ctx, database.PoolConfig{
			ConnString:  cfg.GetDBConnString(),
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: DBMaxConnIdleTime,
			MaxLifetime: DBMaxConnLifetime,
		})
		if perr != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, perr)
		}
		store, err = postgres.Open(ctx, pool)
		if err != nil {
			pool.Close()
		}

	case database.DriverSQLite:
		if mkErr := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); mkErr != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, mkErr)
		}
		store, err = sqlite.Open(ctx, cfg.SQLitePath)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
	return store, nil
}
