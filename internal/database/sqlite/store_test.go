package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "potioncraft.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPathRequired)
}

func TestPoolStats(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	stats, err := store.GetPoolStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPoolStats(), stats)

	stats, err = store.AdjustStaked(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(10001000), stats.TotalKaiStaked)

	stats, err = store.AdjustStaked(ctx, -20000000)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalKaiStaked, "total never drops below zero")
}

func TestAdjustStaked_Concurrent(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AdjustStaked(ctx, 4)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, err := store.GetPoolStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10000100), stats.TotalKaiStaked)
}

func TestSnapshots(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	_, err := store.LoadSnapshots(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.SaveSnapshots(ctx, "s1", map[string][]byte{
		domain.SnapshotKeyWallet:   []byte(`{"isConnected":true,"balance":5000}`),
		domain.SnapshotKeyAppState: []byte(`{"currentTab":"worldpool"}`),
	}))
	require.NoError(t, store.SaveSnapshots(ctx, "s2", map[string][]byte{
		domain.SnapshotKeyWallet: []byte(`{"isConnected":false,"balance":0}`),
	}))
	require.NoError(t, store.SaveSnapshots(ctx, "s1", map[string][]byte{
		domain.SnapshotKeyWallet: []byte(`{"isConnected":true,"balance":4900}`),
	}))

	docs, err := store.LoadSnapshots(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.JSONEq(t, `{"isConnected":true,"balance":4900}`, string(docs[domain.SnapshotKeyWallet]))

	ids, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, ids)

	require.NoError(t, store.DeleteSnapshots(ctx, "s2"))
	ids, err = store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids)

	t.Run("survives reopen", func(t *testing.T) {
		require.NoError(t, store.Close())
		reopened, err := Open(ctx, path)
		require.NoError(t, err)
		defer reopened.Close()

		docs, err := reopened.LoadSnapshots(ctx, "s1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"currentTab":"worldpool"}`, string(docs[domain.SnapshotKeyAppState]))
	})
}
