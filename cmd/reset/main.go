package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PotionCraft_Go/internal/bootstrap"
	"github.com/osse101/PotionCraft_Go/internal/config"
	"github.com/osse101/PotionCraft_Go/internal/database"
)

// Wipes the configured storage backend and recreates an empty, migrated schema.
func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	ctx := context.Background()

	switch cfg.StorageDriver {
	case database.DriverPostgres:
		resetPostgres(ctx, cfg)
	case database.DriverSQLite:
		resetSQLite(cfg.SQLitePath)
	default:
		log.Printf("Storage driver %q keeps nothing on disk; nothing to reset.\n", cfg.StorageDriver)
		return
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to migrate fresh storage: %v", err)
	}
	_ = store.Close()

	log.Println("\n✅ Storage reset complete!")
}

func resetPostgres(ctx context.Context, cfg *config.Config) {
	dbName := cfg.DBName

	// Connect to the maintenance database to manage the target one
	admin := *cfg
	admin.DBName = "postgres"

	serverPool, err := database.NewPool(ctx, database.PoolConfig{ConnString: admin.GetDBConnString(), MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	log.Printf("Database %s created successfully.\n", dbName)
}

func resetSQLite(path string) {
	for _, suffix := range []string{"", "-wal", "-shm"} {
		name := path + suffix
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove %s: %v", name, err)
		}
	}
	fmt.Printf("Removed SQLite database %s\n", path)
}
