package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionCraft_Go/internal/config"
	"github.com/osse101/PotionCraft_Go/internal/database/memory"
	"github.com/osse101/PotionCraft_Go/internal/database/sqlite"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/event"
	"github.com/osse101/PotionCraft_Go/internal/metrics"
	"github.com/osse101/PotionCraft_Go/internal/sse"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: BEST CASE - memory", func(t *testing.T) {
		store, err := OpenStore(ctx, &config.Config{StorageDriver: "memory"})
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("CASE 2: sqlite creates its directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "potioncraft.db")
		store, err := OpenStore(ctx, &config.Config{StorageDriver: "sqlite", SQLitePath: path})
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &sqlite.Store{}, store)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("CASE 3: unknown driver", func(t *testing.T) {
		_, err := OpenStore(ctx, &config.Config{StorageDriver: "redis"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownDriver)
	})
}

func TestInitializeEventSystem_FailedDeliveries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deadletter.jsonl")
	events, err := InitializeEventSystem(&config.Config{DeadLetterPath: path})
	require.NoError(t, err)
	defer events.DeadLetter.Close()

	events.Bus.Subscribe(domain.EventTypeWalletConnected, func(context.Context, event.Event) error {
		return errors.New("subscriber exploded")
	})

	before := testutil.ToFloat64(metrics.EventHandlerErrors.WithLabelValues(domain.EventTypeWalletConnected))
	require.NoError(t, events.Bus.Publish(context.Background(), event.NewWalletConnectedEvent("s1", domain.WalletState{Connected: true})))

	after := testutil.ToFloat64(metrics.EventHandlerErrors.WithLabelValues(domain.EventTypeWalletConnected))
	assert.Equal(t, before+1, after)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "subscriber exploded")
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestRegisterEventHandlers_ForwardsToHub(t *testing.T) {
	events, err := InitializeEventSystem(&config.Config{DeadLetterPath: filepath.Join(t.TempDir(), "dl.jsonl")})
	require.NoError(t, err)
	defer events.DeadLetter.Close()

	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	RegisterEventHandlers(context.Background(), events, hub)
	client := hub.Register("s1", nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, events.Bus.Publish(context.Background(), event.NewSessionResetEvent("s1")))

	select {
	case got := <-client.EventChannel:
		assert.Equal(t, domain.EventTypeSessionReset, got.Type)
		assert.Equal(t, "s1", got.SessionID)
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the hub client")
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"notes.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o600))
	}

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[1], names[2], "notes.txt"}, left)
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Store: memory.NewStore()})
	})
}
